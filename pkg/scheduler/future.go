package scheduler

import (
	"context"
)

// Future holds the eventual result of a unit of work.
type Future[T any] struct {
	c      <-chan T
	cancel context.CancelFunc
}

func newFuture[T any](c <-chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{c: c, cancel: cancel}
}

// C returns the channel the result is delivered on. It receives exactly once.
// Callers reading from C call Stop once done to release the work context.
func (f *Future[T]) C() <-chan T {
	return f.c
}

// Wait blocks until the result is delivered or ctx is done. The work context
// is released either way; when ctx is done first the work is stopped.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case v := <-f.c:
		f.cancel()
		return v, nil
	case <-ctx.Done():
		f.cancel()
		var none T
		return none, ctx.Err()
	}
}

// Stop cancels the context of the work.
func (f *Future[T]) Stop() {
	f.cancel()
}
