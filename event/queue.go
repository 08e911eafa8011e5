package event

import "github.com/lixenwraith/parallax/parameter"

// Queue is a fixed-size ring of reflow messages
// Owned by the frame loop goroutine: presenters push during layout passes and
// the aggregator consumes at the start of the next frame. Not safe for concurrent use
//
// Overflow: Oldest events overwritten when full. Reports carry absolute
// values, so a dropped report is superseded by any later one for the same section
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev, dropping the oldest pending event when full
func (q *Queue) Push(ev Event) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	if q.tail == q.head {
		return nil
	}
	result := make([]Event, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, q.events[idx])
		q.events[idx] = Event{}
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
