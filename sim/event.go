package sim

import "container/heap"

// event is an entry in the EventQueue: an opaque user kind and client id,
// keyed by an absolute simulated-time deadline in nanoseconds. seq breaks
// ties among equal deadlines in FIFO (insertion) order: dispatch correctness
// never depends on the specific tie-break rule, only reproducibility does,
// and FIFO is the simplest deterministic choice.
type event struct {
	deadlineNs int64
	kind       int
	clientID   int64
	seq        int64
}

// EventQueue is a min-heap of events ordered by deadline, then insertion
// order. It implements heap.Interface over a plain slice.
type EventQueue struct {
	events  []event
	nextSeq int64
}

func (q EventQueue) Len() int { return len(q.events) }

func (q EventQueue) Less(i, j int) bool {
	if q.events[i].deadlineNs != q.events[j].deadlineNs {
		return q.events[i].deadlineNs < q.events[j].deadlineNs
	}
	return q.events[i].seq < q.events[j].seq
}

func (q EventQueue) Swap(i, j int) { q.events[i], q.events[j] = q.events[j], q.events[i] }

func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(event))
}

func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[:n-1]
	return item
}

// len reports the number of pending events.
func (q *EventQueue) len() int { return len(q.events) }

// push inserts e, assigning it the next sequence number for FIFO tie-break.
func (q *EventQueue) push(kind int, clientID, deadlineNs int64) {
	e := event{deadlineNs: deadlineNs, kind: kind, clientID: clientID, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(q, e)
}

// pop removes and returns the minimum-deadline event. The caller must ensure
// the queue is non-empty: draining an empty queue is the host's
// responsibility.
func (q *EventQueue) pop() event {
	return heap.Pop(q).(event)
}
