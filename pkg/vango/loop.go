package vango

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultQueueSize is the default capacity of a Loop's dispatch queue.
const DefaultQueueSize = 256

// ErrQueueFull is returned by TryDispatch when the queue is at capacity.
var ErrQueueFull = errors.New("vango: dispatch queue full")

// ErrLoopClosed is returned when work is handed to a closed Loop.
var ErrLoopClosed = errors.New("vango: loop closed")

// Dispatcher hands a function to the goroutine that owns component state.
// Implementations must be safe to call from any goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// Loop is a single-goroutine event loop. Every function dispatched to it
// runs on the goroutine that called Run, one at a time, in the order it was
// queued.
type Loop struct {
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
	afterEach func()
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithQueueSize sets the dispatch queue capacity.
func WithQueueSize(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.queue = make(chan func(), n)
		}
	}
}

// WithLoopLogger sets the logger used for panics and dropped work.
func WithLoopLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithAfterEach registers fn to run on the loop after every dispatched
// function, e.g. to re-render dirty components.
func WithAfterEach(fn func()) LoopOption {
	return func(l *Loop) {
		l.afterEach = fn
	}
}

// NewLoop creates a Loop. Call Run to start processing.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		queue:  make(chan func(), DefaultQueueSize),
		done:   make(chan struct{}),
		logger: slog.Default().With("component", "loop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dispatch queues fn to run on the loop. If the queue is full or the loop
// is closed the function is dropped and a warning is logged.
func (l *Loop) Dispatch(fn func()) {
	if err := l.TryDispatch(fn); err != nil && !errors.Is(err, ErrLoopClosed) {
		l.logger.Warn("dispatch queue full, discarding callback")
	}
}

// TryDispatch queues fn to run on the loop without blocking.
func (l *Loop) TryDispatch(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopClosed
	default:
	}
	select {
	case l.queue <- fn:
		return nil
	case <-l.done:
		return ErrLoopClosed
	default:
		return ErrQueueFull
	}
}

// Call queues fn and waits until it has run on the loop.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	if err := l.TryDispatch(func() {
		defer close(ran)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-ran:
		return nil
	case <-l.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes queued functions until ctx is cancelled or Close is
// called. It returns ctx.Err() when stopped by the context, nil otherwise.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.queue:
			l.execute(fn)
		case <-l.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// execute runs a dispatched function with panic recovery.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	fn()
	if l.afterEach != nil {
		l.afterEach()
	}
}

// Close stops the loop. Queued functions that have not run are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}

// Done returns a channel that is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
