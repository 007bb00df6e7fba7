package async

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Future holds the outcome of an asynchronous computation.
// It settles exactly once, either with a value or with an error;
// every later Resolve or Reject is ignored.
type Future[T any] struct {
	value T
	err   error
	once  sync.Once
	done  chan struct{}
}

// NewFuture returns an unsettled Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve settles the future with a value.
// Returns false if the future was already settled.
func (f *Future[T]) Resolve(value T) bool {
	return f.settle(value, nil)
}

// Reject settles the future with an error.
// Returns false if the future was already settled.
func (f *Future[T]) Reject(err error) bool {
	var zero T
	return f.settle(zero, err)
}

func (f *Future[T]) settle(value T, err error) bool {
	settled := false
	f.once.Do(func() {
		f.value, f.err = value, err
		settled = true
		close(f.done)
	})
	return settled
}

// Done returns a channel that is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext blocks until the future settles or ctx is done.
// The computation itself is not cancelled when ctx is done.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the outcome at most timeout.
// Returns ErrTimeout if the future has not settled in time.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking.
// The last return value is false while the future is still pending.
func (f *Future[T]) Result() (T, error, bool) {
	if !f.IsComplete() {
		var zero T
		return zero, nil, false
	}
	return f.value, f.err, true
}

// Go runs fn on a new goroutine and returns a future for its result.
// If ctx is already cancelled, fn is not called and the future is rejected with ctx.Err().
func Go[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := NewFuture[U]()

	go func() {
		select {
		case <-ctx.Done():
			f.Reject(ctx.Err())
			return
		default:
		}

		v, err := fn(ctx, param)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()

	return f
}

// WaitAll waits for every future and returns their values in order.
// It stops at the first error, or when ctx is done.
func WaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)

	for i, future := range futures {
		g.Go(func() error {
			v, err := future.AwaitContext(gctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WaitAny returns the index and outcome of the first future to settle.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type first struct {
		index int
		value T
		err   error
	}
	done := make(chan first, len(futures))

	for i, future := range futures {
		go func() {
			v, err := future.Await()
			done <- first{index: i, value: v, err: err}
		}()
	}

	res := <-done
	return res.index, res.value, res.err
}
