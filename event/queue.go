package event

import (
	"sync/atomic"

	"github.com/lixenwraith/loco/parameter"
	"github.com/lixenwraith/loco/status"
)

const (
	queueSize = parameter.EventQueueSize
	queueMask = parameter.EventBufferMask
)

// slot holds one event; seq is the ring position + 1 once the event is fully written
type slot struct {
	ev  Event
	seq atomic.Uint64
}

// Queue is a bounded MPSC ring of action events
//   - Push: any goroutine (input poller, tests)
//   - Drain: the tick loop only
//
// When producers outrun the tick loop the oldest events are dropped and counted
type Queue struct {
	slots   [queueSize]slot
	head    atomic.Uint64
	tail    atomic.Uint64
	dropped *atomic.Int64
}

// NewQueue creates an empty queue reporting drops to stats
func NewQueue(stats *status.Registry) *Queue {
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Queue{dropped: stats.Counter(status.EventsDropped)}
}

// Push appends ev, displacing the oldest pending event when the ring is full
func (q *Queue) Push(ev Event) {
	pos := q.tail.Add(1) - 1
	s := &q.slots[pos&queueMask]
	s.ev = ev
	s.seq.Store(pos + 1)

	// Keep head within one ring of the newest reservation
	for {
		head := q.head.Load()
		floor := pos + 1
		if floor < queueSize {
			return
		}
		floor -= queueSize
		if head >= floor {
			return
		}
		if q.head.CompareAndSwap(head, floor) {
			q.dropped.Add(int64(floor - head))
			return
		}
	}
}

// Drain appends pending events to dst[:0] in FIFO order and returns it
// Stops early at a slot whose producer has not finished writing
func (q *Queue) Drain(dst []Event) []Event {
	dst = dst[:0]
	for {
		head := q.head.Load()
		tail := q.tail.Load()

		pos := head
		for ; pos < tail; pos++ {
			s := &q.slots[pos&queueMask]
			if s.seq.Load() != pos+1 {
				break
			}
			dst = append(dst, s.ev)
		}

		if pos == head || q.head.CompareAndSwap(head, pos) {
			return dst
		}
		// A producer overflowed and moved head while we read
		dst = dst[:0]
	}
}

// Len returns the number of pending events, capped at the ring size
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > queueSize {
		n = queueSize
	}
	return int(n)
}

// Dropped returns the number of events lost to overflow
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}
