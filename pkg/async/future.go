package async

import (
	"context"
	"fmt"
	"sync"
)

// Future is a single-assignment handle to the eventual result of a submitted
// task. It completes exactly once; later completion attempts (a late result
// arriving after a timeout fallback already resolved the wrapper, for
// example) are discarded.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns an already-completed Future holding v. Useful in tests
// and for combining a computed value with an in-flight one.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

func (f *Future[T]) complete(v T, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx expires. The returned error
// is either the task's fault or ctx.Err(); futures produced by WithTimeout
// never carry a fault.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Submit schedules fn on the pool and returns its handle immediately.
// A panic inside fn is recovered into a fault on the handle; queue rejection
// and pool shutdown complete the handle with the corresponding sentinel
// error instead of failing the submission call.
func Submit[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, fmt.Errorf("async: task panic: %v", r))
			}
		}()
		v, err := fn()
		f.complete(v, err)
	}

	tasksSubmitted.Inc()
	if err := p.submit(task); err != nil {
		tasksRejected.Inc()
		var zero T
		f.complete(zero, err)
	}
	return f
}
