package sim

import (
	"fmt"
	"io"
)

// StationStatus is the result of a station request.
type StationStatus int

const (
	// UnknownStation indicates a lookup or delete found no station by that name.
	UnknownStation StationStatus = 0
	// Success indicates an operation completed with no special disposition.
	Success StationStatus = 1
	// WaitingStation indicates the request was enqueued behind a busy server.
	WaitingStation StationStatus = 2
	// UsingStation indicates the request's client is now (or still) in service.
	UsingStation StationStatus = 3
)

func (s StationStatus) String() string {
	switch s {
	case UnknownStation:
		return "UNKNOWN_STATION"
	case Success:
		return "SUCCESS"
	case WaitingStation:
		return "WAITING_STATION"
	case UsingStation:
		return "USING_STATION"
	default:
		return fmt.Sprintf("StationStatus(%d)", int(s))
	}
}

// StationClient is a single client's sojourn record inside a Station's queue.
// It is owned exclusively by that queue: created on Request, destroyed on
// Leave.
type StationClient struct {
	ID                 int64
	StationEntryTime   int64 // time the client joined the queue
	ServerEntryTime    int64 // time the client entered service (0 while waiting)
	EventKindAtEnqueue int   // event kind that caused this client to enqueue
}

// Station models a single-server FIFO queue. The head of queue (index 0) is
// the in-service client; any remaining entries are waiting.
//
// Invariants:
//   - RescheduleFlag is set iff a departing client has scheduled a zero-delay
//     self-event for the new head, not yet consumed by a matching Request.
//   - TotalClients/TotalServiceTime/TotalResponseTime are running sums reset
//     only by ResetStatistics, which also records LastResetTime.
type Station struct {
	Name           string
	queue          []*StationClient
	RescheduleFlag bool

	TotalServiceTime  int64
	TotalResponseTime int64
	TotalClients      int64
}

// QueueLength returns the number of clients currently at the station
// (in service plus waiting).
func (st *Station) QueueLength() int { return len(st.queue) }

// Registry is a station name → *Station mapping. Stations are owned by the
// registry; client records are owned exclusively by their station's queue.
//
// Thread-safety: NOT thread-safe. See Kernel doc comment.
type Registry struct {
	stations map[string]*Station
}

// NewRegistry constructs an empty station registry.
func NewRegistry() *Registry {
	return &Registry{stations: make(map[string]*Station)}
}

// Create registers a new, empty station under name. Returns nil if a station
// by that name already exists: create fails if name exists by returning a
// sentinel null.
func (r *Registry) Create(name string) *Station {
	if _, exists := r.stations[name]; exists {
		return nil
	}
	st := &Station{Name: name}
	r.stations[name] = st
	return st
}

// Delete unregisters the station by name. Returns ErrUnknownStation (wrapped)
// if no such station exists.
func (r *Registry) Delete(name string) error {
	if _, exists := r.stations[name]; !exists {
		return fmt.Errorf("station %q: %w", name, ErrUnknownStation)
	}
	delete(r.stations, name)
	return nil
}

// Get looks up a station by name, returning nil if it doesn't exist.
func (r *Registry) Get(name string) *Station {
	return r.stations[name]
}

// Count returns the number of registered stations.
func (r *Registry) Count() int { return len(r.stations) }

// ForEach calls fn once per registered station, in unspecified order.
func (r *Registry) ForEach(fn func(*Station)) {
	for _, st := range r.stations {
		fn(st)
	}
}

// request implements the three-case priority order for a station request. eventKind
// is the kind of the event currently being processed by the kernel (used to
// tag a newly-enqueued client, and later to re-schedule the dispatch handoff
// event on Leave).
func (k *Kernel) request(st *Station, clientID int64, eventKind int) StationStatus {
	if st == nil {
		fatalf("station request: unknown station")
	}

	// Case 1: dispatch handoff — the head client's turn has come.
	if st.RescheduleFlag && len(st.queue) > 0 && st.queue[0].ID == clientID {
		st.queue[0].ServerEntryTime = k.Clock
		st.RescheduleFlag = false
		k.Tracef(1, "client %d enters station %q, having been queued", clientID, st.Name)
		return UsingStation
	}

	client := &StationClient{
		ID:                 clientID,
		EventKindAtEnqueue: eventKind,
		StationEntryTime:   k.Clock,
	}
	st.queue = append(st.queue, client)

	// Case 3: busy station — server entry time stamped later, on dispatch.
	if len(st.queue) > 1 {
		k.Tracef(1, "client %d queues at station %q", clientID, st.Name)
		return WaitingStation
	}

	// Case 2: empty station — client enters service immediately.
	client.ServerEntryTime = k.Clock
	k.Tracef(1, "client %d enters station %q", clientID, st.Name)
	return UsingStation
}

// Request is the pointer-keyed station request operation. Callers must
// ensure clientID is not already present in st's queue; use RequestByName for
// the duplicate-checking variant.
func (k *Kernel) Request(st *Station, clientID int64) StationStatus {
	return k.request(st, clientID, k.currentEventKind)
}

// RequestByName looks up the station by name and additionally scans its
// queue for a duplicate clientID, returning ErrDuplicateClient (wrapped) if
// found rather than enqueuing it a second time. An unknown station name is
// still a fatal contract violation, matching Request. Slower than Request.
func (k *Kernel) RequestByName(name string, clientID int64) (StationStatus, error) {
	st := k.Registry.Get(name)
	if st == nil {
		fatalf("station request: unknown station %q", name)
	}
	for _, c := range st.queue {
		if c.ID == clientID {
			return UnknownStation, fmt.Errorf("station %q, client %d: %w", name, clientID, ErrDuplicateClient)
		}
	}
	return k.request(st, clientID, k.currentEventKind), nil
}

// leave implements Leave's semantics: remove the head of queue,
// update accounting, and if the queue remains non-empty schedule the
// zero-delay dispatch handoff for the new head.
func (k *Kernel) leave(st *Station, clientID int64) {
	if st == nil {
		fatalf("station leave: unknown station")
	}
	if len(st.queue) == 0 {
		fatalf("station leave: empty station queue at %q", st.Name)
	}

	head := st.queue[0]
	if head.ID != clientID {
		fatalf("station leave: client id mismatch at %q: got %d, want %d", st.Name, clientID, head.ID)
	}
	st.queue = st.queue[1:]

	st.TotalClients++
	st.TotalResponseTime += k.Clock - head.StationEntryTime
	st.TotalServiceTime += k.Clock - head.ServerEntryTime

	k.Tracef(1, "client %d leaves station %q tresp=%dns tserv=%dns", head.ID, st.Name,
		k.Clock-head.StationEntryTime, k.Clock-head.ServerEntryTime)

	if len(st.queue) > 0 {
		next := st.queue[0]
		k.ScheduleNS(head.EventKindAtEnqueue, next.ID, 0)
		st.RescheduleFlag = true
	}
}

// Leave is the pointer-keyed station departure operation.
func (k *Kernel) Leave(st *Station, clientID int64) {
	k.leave(st, clientID)
}

// LeaveByName looks up the station by name and departs clientID. Slower than
// Leave.
func (k *Kernel) LeaveByName(name string, clientID int64) {
	st := k.Registry.Get(name)
	if st == nil {
		fatalf("station leave: unknown station %q", name)
	}
	k.leave(st, clientID)
}

// ResetStatistics zeros every station's accounting counters and records
// LastResetTime. Queue contents and in-progress clients are preserved — this
// means already-queued clients' StationEntryTime/ServerEntryTime are not
// reset, so the first post-reset departures carry pre-reset waiting time
// into their contribution. See DESIGN.md "Open Question decisions" for why
// this is kept rather than patched.
func (k *Kernel) ResetStatistics() {
	k.Registry.ForEach(func(st *Station) {
		st.TotalClients = 0
		st.TotalResponseTime = 0
		st.TotalServiceTime = 0
	})
	k.LastResetTime = k.Clock
}

// PrintQueue writes the ids of every client currently queued at the named
// station, in queue order, to w.
func (r *Registry) PrintQueue(name string, w io.Writer) error {
	st := r.Get(name)
	if st == nil {
		return fmt.Errorf("station %q: %w", name, ErrUnknownStation)
	}
	for _, c := range st.queue {
		fmt.Fprintf(w, "%d ", c.ID)
	}
	fmt.Fprintln(w)
	return nil
}
