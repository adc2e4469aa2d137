// Package sim provides a discrete-event simulation kernel for queueing
// networks of single-server FIFO service stations.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - event.go: event, EventQueue — the min-heap that drives simulated time
//   - station.go: Station, StationClient, Registry — single-server FIFO stations
//   - kernel.go: Kernel — the context object tying the clock, event queue,
//     station registry and PRNG streams together, plus the event loop
//
// # Architecture
//
// The kernel is single-threaded and non-reentrant (see Kernel doc comment).
// All state is threaded explicitly through a *Kernel value rather than held
// in package globals, so a process can run multiple independent simulations
// concurrently as long as each one is driven from a single goroutine.
//
// Stations hand a departing client's server off to the next queued client via
// a zero-delay self-event rather than a direct call — see Kernel.Leave.
// This keeps station advancement observable through the same event loop the
// host drives, instead of introducing a second, implicit control-flow path.
//
// The stats package (stats/analyzer.go) implements the batch-means output
// analyzer that consumes scalar observations produced while driving a Kernel
// and signals when a target confidence-interval precision is reached.
package sim
