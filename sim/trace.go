package sim

import "github.com/sirupsen/logrus"

// DefaultTraceLevel is the trace threshold a fresh Kernel starts with.
// Level 1 is reserved for the library's own diagnostics, so a fresh Kernel
// starts with tracing already on rather than fully disabled (0).
const DefaultTraceLevel = 1

// SetTraceLevel sets the trace threshold. A message at level L is emitted
// only when L >= threshold; 0 disables tracing entirely.
func (k *Kernel) SetTraceLevel(level int) {
	k.traceLevel = level
}

// TraceLevel returns the current trace threshold.
func (k *Kernel) TraceLevel() int {
	return k.traceLevel
}

// Tracef emits a diagnostic message through logrus if level is at or above
// the configured threshold, prefixed with the current simulated time in
// milliseconds.
func (k *Kernel) Tracef(level int, format string, args ...any) {
	if k.traceLevel == 0 || level < k.traceLevel {
		return
	}
	logrus.Infof("%.6f "+format, append([]any{k.TimeMs()}, args...)...)
}
