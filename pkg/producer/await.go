package producer

import (
	"context"

	"github.com/dmitrymomot/memo/pkg/async"
)

// Await subscribes to p and blocks until it emits or ctx is done.
// When ctx is done first, the subscription is cancelled and ctx.Err() is returned.
func Await[T any](ctx context.Context, p Producer[T]) (T, error) {
	if p == nil {
		var zero T
		return zero, ErrNilProducer
	}

	s := ToFuture(p)
	select {
	case <-s.future.Done():
		return s.future.Await()
	case <-ctx.Done():
		s.Unsubscribe()
		if v, err, ok := s.future.Result(); ok {
			return v, err
		}
		var zero T
		return zero, ctx.Err()
	}
}

// Subscribed couples a live subscription with the future that receives its outcome.
type Subscribed[T any] struct {
	future *async.Future[T]
	sub    Subscription
}

// ToFuture subscribes to p and returns a handle whose Future settles with p's outcome.
func ToFuture[T any](p Producer[T]) *Subscribed[T] {
	f := async.NewFuture[T]()
	sub := p.Subscribe(
		func(v T) { f.Resolve(v) },
		func(err error) { f.Reject(err) },
	)
	return &Subscribed[T]{future: f, sub: sub}
}

// Future returns the future that settles with the producer's outcome.
func (s *Subscribed[T]) Future() *async.Future[T] { return s.future }

// Unsubscribe cancels the underlying subscription.
func (s *Subscribed[T]) Unsubscribe() { s.sub.Unsubscribe() }
