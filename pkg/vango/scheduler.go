package vango

import (
	"errors"
	"sync/atomic"
	"time"
)

// retryDelay is how long a fired timer waits before offering its callback
// again to a dispatcher whose queue was full.
const retryDelay = 10 * time.Millisecond

// Scheduler runs a function after a delay. The returned cancel function
// prevents fn from running if called before it starts; it is idempotent.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// NewScheduler returns a Scheduler backed by time.AfterFunc whose callbacks
// run on d. Cancelling from d's goroutine is atomic with respect to the
// callback: once cancel returns, fn will not run, even if the timer already
// fired and the callback is waiting in d's queue.
//
// If d has a TryDispatch method (as Loop does), a callback refused with
// ErrQueueFull is offered again after a short delay until d accepts it.
func NewScheduler(d Dispatcher) Scheduler {
	return &timerScheduler{dispatcher: d}
}

type timerScheduler struct {
	dispatcher Dispatcher
}

func (s *timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	task := func() {
		if cancelled.Load() {
			return
		}
		fn()
	}

	var deliver func()
	deliver = func() {
		if cancelled.Load() {
			return
		}
		td, ok := s.dispatcher.(interface{ TryDispatch(func()) error })
		if !ok {
			s.dispatcher.Dispatch(task)
			return
		}
		// A full loop must not swallow the callback: the caller still holds
		// the cancel func and expects fn to run.
		if err := td.TryDispatch(task); errors.Is(err, ErrQueueFull) {
			time.AfterFunc(retryDelay, deliver)
		}
	}
	timer := time.AfterFunc(d, deliver)

	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

// SchedulerContext carries the Scheduler of the session that owns a
// component tree. Components created under an owner without one fall back
// to their own defaults.
var SchedulerContext = CreateContext[Scheduler](nil)
