package producer

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Producer is a lazy unit of asynchronous work that yields exactly one value
// or one error per subscription. No work starts before Subscribe.
//
// Exactly one of onValue or onError is called per subscription, at most once,
// and never after Unsubscribe has returned for a subscription whose work was
// still pending. Nil callbacks are allowed and ignored.
type Producer[T any] interface {
	Subscribe(onValue func(T), onError func(error)) Subscription
}

// Subscription cancels interest in a producer's outcome.
// Unsubscribe is idempotent and safe for concurrent use.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a function to the Subscription interface.
type SubscriptionFunc func()

// Unsubscribe calls f.
func (f SubscriptionFunc) Unsubscribe() { f() }

// Noop is a subscription with nothing left to cancel.
var Noop Subscription = SubscriptionFunc(func() {})

// Func returns a producer that runs fn on its own goroutine for every subscription.
// The context passed to fn is cancelled when the subscription is unsubscribed.
// A panic in fn is delivered as an error wrapping ErrPanic.
func Func[T any](fn func(context.Context) (T, error)) Producer[T] {
	return funcProducer[T](fn)
}

type funcProducer[T any] func(context.Context) (T, error)

func (fn funcProducer[T]) Subscribe(onValue func(T), onError func(error)) Subscription {
	onValue, onError = callbacks(onValue, onError)

	ctx, cancel := context.WithCancel(context.Background())
	sub := &cancelSubscription{cancel: cancel}

	go func() {
		defer cancel()

		v, err := run(ctx, fn)
		if !sub.finish() {
			return
		}
		if err != nil {
			onError(err)
			return
		}
		onValue(v)
	}()

	return sub
}

func run[T any](ctx context.Context, fn func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn(ctx)
}

// cancelSubscription races the worker goroutine: whoever flips closed first wins.
type cancelSubscription struct {
	closed atomic.Bool
	cancel context.CancelFunc
}

func (s *cancelSubscription) Unsubscribe() {
	if s.closed.CompareAndSwap(false, true) {
		s.cancel()
	}
}

func (s *cancelSubscription) finish() bool {
	return s.closed.CompareAndSwap(false, true)
}

// Just returns a producer that emits v synchronously inside Subscribe.
func Just[T any](v T) Producer[T] {
	return justProducer[T]{value: v}
}

type justProducer[T any] struct{ value T }

func (p justProducer[T]) Subscribe(onValue func(T), onError func(error)) Subscription {
	onValue, _ = callbacks(onValue, onError)
	onValue(p.value)
	return Noop
}

// Fail returns a producer that emits err synchronously inside Subscribe.
func Fail[T any](err error) Producer[T] {
	return failProducer[T]{err: err}
}

type failProducer[T any] struct{ err error }

func (p failProducer[T]) Subscribe(onValue func(T), onError func(error)) Subscription {
	_, onError = callbacks(onValue, onError)
	onError(p.err)
	return Noop
}

// Map returns a producer that applies fn to the value emitted by p.
// Errors pass through unchanged. Subscribing to the result subscribes to p.
func Map[T, U any](p Producer[T], fn func(T) U) Producer[U] {
	return mapProducer[T, U]{source: p, fn: fn}
}

type mapProducer[T, U any] struct {
	source Producer[T]
	fn     func(T) U
}

func (p mapProducer[T, U]) Subscribe(onValue func(U), onError func(error)) Subscription {
	onValue, onError = callbacks(onValue, onError)
	return p.source.Subscribe(func(v T) { onValue(p.fn(v)) }, onError)
}

func callbacks[T any](onValue func(T), onError func(error)) (func(T), func(error)) {
	if onValue == nil {
		onValue = func(T) {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	return onValue, onError
}
