package async

import (
	"errors"
	"time"

	"github.com/ghuser/itemhub/pkg/logger"
)

// ErrTimeout is the cause handed to fallback builders when the deadline
// elapses before the wrapped future resolves.
var ErrTimeout = errors.New("async: operation timed out")

// WithTimeout bounds f with a deadline and guarantees an in-band result.
//
// If f resolves with a value before the deadline, the value passes through
// unchanged. If f resolves with a fault, or the deadline elapses first, the
// returned future resolves to fallback(cause) and one diagnostic entry is
// logged with the operation name and key. The caller never observes the
// fault itself.
//
// A zero or negative deadline means "fall back immediately unless f is
// already complete". fallback must not panic; a panicking fallback builder
// is a programming error and is allowed to crash the worker.
//
// The wrapped work is not cancelled on timeout. It keeps running and its
// eventual result is discarded by the single-assignment future.
func WithTimeout[T any](f *Future[T], deadline time.Duration, fallback func(cause error) T, log logger.Logger, op, key string) *Future[T] {
	out := newFuture[T]()
	go func() {
		if deadline <= 0 {
			select {
			case <-f.done:
				resolve(out, f, fallback, log, op, key)
			default:
				fallbacksServed.WithLabelValues(op).Inc()
				log.Warn("async operation fell back", "op", op, "key", key, "error", ErrTimeout, "deadline", deadline)
				out.complete(fallback(ErrTimeout), nil)
			}
			return
		}

		timer := time.NewTimer(deadline)
		defer timer.Stop()
		select {
		case <-f.done:
			resolve(out, f, fallback, log, op, key)
		case <-timer.C:
			fallbacksServed.WithLabelValues(op).Inc()
			log.Warn("async operation fell back", "op", op, "key", key, "error", ErrTimeout, "deadline", deadline)
			out.complete(fallback(ErrTimeout), nil)
		}
	}()
	return out
}

// resolve forwards a completed future's value, translating a fault into the
// fallback value plus a diagnostic entry.
func resolve[T any](out, f *Future[T], fallback func(error) T, log logger.Logger, op, key string) {
	if f.err != nil {
		fallbacksServed.WithLabelValues(op).Inc()
		log.Warn("async operation fell back", "op", op, "key", key, "error", f.err)
		out.complete(fallback(f.err), nil)
		return
	}
	out.complete(f.val, nil)
}
