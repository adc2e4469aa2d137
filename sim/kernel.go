package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Kernel is the discrete-event simulation kernel: the simulated clock, the
// event queue, the station registry, and the PRNG streams, threaded
// explicitly as a single context value rather than held as
// package globals. This lets a process run several independent simulations
// concurrently, provided each Kernel is driven from a single goroutine.
//
// Thread-safety: NOT thread-safe and non-reentrant. There is exactly one
// logical thread of control advancing through event extraction; no operation
// suspends on external I/O.
type Kernel struct {
	Clock         int64 // current simulated time, nanoseconds, monotone non-decreasing
	LastResetTime int64 // simulated time of the most recent ResetStatistics call

	Streams  *Streams
	Registry *Registry

	eventQueue       EventQueue
	traceLevel       int
	currentEventKind int // kind of the event most recently returned by Extract
}

// NewKernel constructs a ready-to-use Kernel: zeroed clock, a fresh default
// PRNG seed table, an empty station registry, and the trace threshold set to
// DefaultTraceLevel.
func NewKernel() *Kernel {
	return &Kernel{
		Streams:    NewStreams(),
		Registry:   NewRegistry(),
		traceLevel: DefaultTraceLevel,
	}
}

// Reset reinitializes k for reuse as a fresh simulation: a new default PRNG
// seed table, an empty registry, empty event queue, and zeroed clock. The
// garbage collector reclaims the previous registry, station, client and
// event records once they become unreachable.
func (k *Kernel) Reset() {
	k.Clock = 0
	k.LastResetTime = 0
	k.Streams = NewStreams()
	k.Registry = NewRegistry()
	k.eventQueue = EventQueue{}
	k.currentEventKind = 0
}

// TimeNs returns the current simulated time in nanoseconds.
func (k *Kernel) TimeNs() int64 { return k.Clock }

// TimeMs returns the current simulated time in milliseconds.
func (k *Kernel) TimeMs() float64 { return float64(k.Clock) / 1e6 }

// LastResetTimeNs returns the simulated time of the most recent
// ResetStatistics call (0 if never called).
func (k *Kernel) LastResetTimeNs() int64 { return k.LastResetTime }

// Schedule enqueues an event at k.Clock + round(ms * 1e6) nanoseconds. This
// is the user-facing, millisecond-valued convenience; internally the kernel
// always operates in nanoseconds.
func (k *Kernel) Schedule(kind int, clientID int64, ms float64) {
	delayNs := int64(math.Round(ms * 1e6))
	k.eventQueue.push(kind, clientID, k.Clock+delayNs)
}

// ScheduleNS enqueues an event at k.Clock + delayNs nanoseconds. delayNs == 0
// is permitted and is the mechanism used for the station-to-station dispatch
// handoff (see Kernel.Leave / Kernel.leave).
func (k *Kernel) ScheduleNS(kind int, clientID, delayNs int64) {
	k.eventQueue.push(kind, clientID, k.Clock+delayNs)
}

// Extract pops the minimum-deadline event, advances the clock to its
// deadline, and returns its kind and client id. The caller (or Run) is
// responsible for ensuring the queue is non-empty; Extract on an empty queue
// is a contract violation.
func (k *Kernel) Extract() (kind int, clientID int64) {
	if k.eventQueue.len() == 0 {
		fatalf("extract: event queue is empty")
	}
	e := k.eventQueue.pop()
	k.Clock = e.deadlineNs
	k.currentEventKind = e.kind
	return e.kind, e.clientID
}

// Pending reports the number of events still queued.
func (k *Kernel) Pending() int { return k.eventQueue.len() }

// Run drives the event loop: while events remain and stop returns false,
// extract the next event, advance the clock, and dispatch to handler. This is
// the convenience loop shape most hosts want; lower-level
// Extract/Schedule/ScheduleNS remain public for hosts that want to drive the
// loop themselves (the host program's own structure is outside this
// package's concern).
//
// stop is consulted after each dispatched event; a nil stop runs until the
// queue drains.
func (k *Kernel) Run(handler func(kind int, clientID int64), stop func() bool) {
	for k.Pending() > 0 {
		kind, clientID := k.Extract()
		logrus.Debugf("[tick %012dns] dispatching kind=%d client=%d", k.Clock, kind, clientID)
		handler(kind, clientID)
		if stop != nil && stop() {
			return
		}
	}
}
