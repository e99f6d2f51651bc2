package async

import (
	"context"
	"fmt"
)

// Combine joins two in-flight futures into one derived value. Both inputs
// are already dispatched when they are handed in, so total latency is
// bounded by the slower of the two, not their sum.
//
// join runs once both inputs have resolved to their (possibly-fallback)
// values. A panic in join becomes a fault on the returned future — callers
// wrap the result in WithTimeout, which turns that fault into the outer
// fallback. Because the inputs self-resolve through their own wrappers, the
// outer fallback is a defensive second layer, not the primary fault path.
func Combine[A, B, R any](fa *Future[A], fb *Future[B], join func(A, B) R) *Future[R] {
	out := newFuture[R]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				out.complete(zero, fmt.Errorf("async: join panic: %v", r))
			}
		}()
		a, errA := fa.Await(context.Background())
		if errA != nil {
			var zero R
			out.complete(zero, fmt.Errorf("async: combine left: %w", errA))
			return
		}
		b, errB := fb.Await(context.Background())
		if errB != nil {
			var zero R
			out.complete(zero, fmt.Errorf("async: combine right: %w", errB))
			return
		}
		out.complete(join(a, b), nil)
	}()
	return out
}
