package event

import "github.com/lixenwraith/reef-arcade/parameter"

// Queue is a fixed ring buffer owned by one engine instance
// Single goroutine: the engine pushes during a step, the host drains after it
//
// Overflow: oldest events are overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

// Push appends an event, overwriting the oldest when full
func (q *Queue) Push(e Event) {
	q.events[q.tail&parameter.EventBufferMask] = e
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Sound is shorthand for pushing a cue
func (q *Queue) Sound(c Cue) {
	q.Push(Event{Type: EventSound, Payload: c})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for i := q.head; i < q.tail; i++ {
		idx := i & parameter.EventBufferMask
		out = append(out, q.events[idx])
		q.events[idx] = Event{}
	}
	q.head = q.tail
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
