package events

import (
	"github.com/lixenwraith/neon-strike/constants"
)

// Queue buffers the events raised during a frame until the router dispatches them
// Owned by the frame loop goroutine: the step and input handling push, DispatchAll consumes
// It is not safe for concurrent use
//
// Overflow: the oldest unread event is evicted so the newest state changes survive
type Queue struct {
	ring    [constants.EventQueueSize]GameEvent
	head    int // Oldest unread slot
	n       int // Unread count
	dropped uint64
	out     []GameEvent
}

func NewQueue() *Queue {
	return &Queue{out: make([]GameEvent, 0, 64)}
}

// Push appends event; returns false when an unread event had to be evicted to make room
func (q *Queue) Push(event GameEvent) bool {
	q.ring[(q.head+q.n)&constants.EventBufferMask] = event
	if q.n < constants.EventQueueSize {
		q.n++
		return true
	}
	q.head = (q.head + 1) & constants.EventBufferMask
	q.dropped++
	return false
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is reused and only valid until the next Consume
func (q *Queue) Consume() []GameEvent {
	if q.n == 0 {
		return nil
	}
	q.out = q.out[:0]
	for i := 0; i < q.n; i++ {
		idx := (q.head + i) & constants.EventBufferMask
		q.out = append(q.out, q.ring[idx])
		q.ring[idx] = GameEvent{} // Release payload
	}
	q.head = (q.head + q.n) & constants.EventBufferMask
	q.n = 0
	return q.out
}

// Len returns the number of unconsumed events
func (q *Queue) Len() int {
	return q.n
}

// Dropped returns how many events were evicted before consumption since creation
func (q *Queue) Dropped() uint64 {
	return q.dropped
}

// Drain discards pending events
func (q *Queue) Drain() {
	q.Consume()
}
