package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_PopReturnsMinDeadlineFirst(t *testing.T) {
	// GIVEN events pushed out of deadline order
	var q EventQueue
	q.push(1, 100, 30)
	q.push(1, 200, 10)
	q.push(1, 300, 20)

	// WHEN popped repeatedly
	// THEN they come back in increasing deadline order
	first := q.pop()
	assert.Equal(t, int64(10), first.deadlineNs)
	second := q.pop()
	assert.Equal(t, int64(20), second.deadlineNs)
	third := q.pop()
	assert.Equal(t, int64(30), third.deadlineNs)
}

func TestEventQueue_TiesBreakFIFO(t *testing.T) {
	// GIVEN three events scheduled at the same deadline
	var q EventQueue
	q.push(1, 100, 5)
	q.push(1, 200, 5)
	q.push(1, 300, 5)

	// WHEN popped
	// THEN they come back in insertion order
	assert.Equal(t, int64(100), q.pop().clientID)
	assert.Equal(t, int64(200), q.pop().clientID)
	assert.Equal(t, int64(300), q.pop().clientID)
}

func TestEventQueue_LenTracksPendingCount(t *testing.T) {
	var q EventQueue
	assert.Equal(t, 0, q.len())
	q.push(1, 1, 1)
	q.push(1, 2, 2)
	assert.Equal(t, 2, q.len())
	q.pop()
	assert.Equal(t, 1, q.len())
}
