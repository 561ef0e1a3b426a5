package event

import (
	"math"
	"sync"

	"github.com/lixenwraith/aspire/parameter"
)

// Queue buffers input events between the poll goroutine and the frame loop
// Push merges an event into the previous one when only the latest matters:
//   - PointerMove, Resize: latest wins
//   - Scroll absolute: replaces any pending scroll
//   - Scroll relative: summed with a pending relative scroll of the same sign
//
// Order across different types is preserved. When full, the oldest event is dropped.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	merged  uint64
	dropped uint64
}

func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, parameter.InputQueueSize)}
}

// Push appends ev or folds it into the last pending event, safe from any goroutine
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n := len(q.pending); n > 0 {
		if merged, ok := merge(q.pending[n-1], ev); ok {
			q.pending[n-1] = merged
			q.merged++
			return
		}
	}
	if len(q.pending) == parameter.InputQueueSize {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:len(q.pending)-1]
		q.dropped++
	}
	q.pending = append(q.pending, ev)
}

// merge folds next into prev when the pair collapses to one event
func merge(prev, next Event) (Event, bool) {
	if prev.Type != next.Type {
		return Event{}, false
	}
	switch next.Type {
	case PointerMove, Resize:
		return next, true
	case Scroll:
		if !next.Delta {
			return next, true
		}
		// Mixed signs would clamp differently at the scroll bounds
		if prev.Delta && math.Signbit(prev.Y) == math.Signbit(next.Y) {
			prev.Y += next.Y
			return prev, true
		}
	}
	return Event{}, false
}

// Consume returns pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Event, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Stats returns how many events were merged and dropped since creation
func (q *Queue) Stats() (merged, dropped uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.merged, q.dropped
}
