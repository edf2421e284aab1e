package colorwheel

import (
	"context"
	"sync"
)

// Dispatcher delivers host callbacks onto the host's own execution context.
//
// The wheel never calls OnColorChange or OnColorConfirm directly; it hands
// each invocation to its Dispatcher. Implementations must run callbacks in
// the order Dispatch was called.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatchFunc adapts an ordinary function to the Dispatcher interface.
type DispatchFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatchFunc) Dispatch(fn func()) {
	f(fn)
}

// Immediate runs callbacks synchronously on the calling goroutine.
// It suits hosts where gesture delivery and callbacks share one UI thread.
type Immediate struct{}

// Dispatch runs fn immediately.
func (Immediate) Dispatch(fn func()) {
	fn()
}

// Queue buffers callbacks until the host drains them, typically once per
// frame on its UI goroutine. Queue is safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Dispatch appends fn to the queue. It never blocks on the host.
func (q *Queue) Dispatch(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of callbacks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs all pending callbacks in dispatch order and returns how many
// ran. Callbacks dispatched while draining run in the same call.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
		}
		n += len(batch)
	}
}

// Loop runs callbacks on whichever goroutine calls Run.
// Dispatch never blocks; callbacks queue until Run picks them up.
type Loop struct {
	queue Queue
	wake  chan struct{}
}

// NewLoop creates a Loop. Call Run on the host goroutine.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Dispatch queues fn and wakes Run.
func (l *Loop) Dispatch(fn func()) {
	l.queue.Dispatch(fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes dispatched callbacks in order until ctx is done.
// Callbacks still queued when ctx ends are left for the next Run.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.queue.Drain()
		}
	}
}
