package input

import (
	"sync"
	"time"
)

// Queue is an unbounded FIFO of raw events
// Any goroutine may Push; a single consumer calls Poll or Wait
type Queue struct {
	mu     sync.Mutex
	events []Event
	signal chan struct{} // Capacity 1, set when events became available
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		signal: make(chan struct{}, 1),
	}
}

// Push appends an event and wakes a waiting consumer
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Poll returns the oldest event without blocking
func (q *Queue) Poll() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return e, true
}

// Wait returns the oldest event, blocking up to timeout for one to arrive
func (q *Queue) Wait(timeout time.Duration) (Event, bool) {
	if e, ok := q.Poll(); ok {
		return e, true
	}
	if timeout <= 0 {
		return Event{}, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-q.signal:
			if e, ok := q.Poll(); ok {
				return e, true
			}
		case <-timer.C:
			return q.Poll()
		}
	}
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
