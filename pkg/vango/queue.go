package vango

import "sync"

// Queue is a Dispatcher that holds functions until Drain is called. It lets
// a component without an event loop receive timer callbacks on the
// goroutine that owns it.
type Queue struct {
	mu    sync.Mutex
	fns   []func()
	ready chan struct{}
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Dispatch implements Dispatcher. It never blocks.
func (q *Queue) Dispatch(fn func()) {
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value after Dispatch. A receive does not guarantee that
// work is still waiting; Drain may already have taken it.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Drain runs queued functions on the calling goroutine, including any
// queued while draining, and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		fns := q.fns
		q.fns = nil
		q.mu.Unlock()

		if len(fns) == 0 {
			return n
		}
		for _, fn := range fns {
			fn()
		}
		n += len(fns)
	}
}
