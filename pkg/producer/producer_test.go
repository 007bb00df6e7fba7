package producer_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memo/pkg/producer"
)

func TestFuncIsLazy(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	p := producer.Func(func(context.Context) (int, error) {
		runs.Add(1)
		return 1, nil
	})

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load(), "no work before subscribe")

	v, err := producer.Await(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, int32(1), runs.Load())

	_, err = producer.Await(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int32(2), runs.Load(), "each subscription runs the work again")
}

func TestFuncDeliversError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := producer.Func(func(context.Context) (string, error) {
		return "", boom
	})

	_, err := producer.Await(context.Background(), p)
	assert.ErrorIs(t, err, boom)
}

func TestFuncRecoversPanic(t *testing.T) {
	t.Parallel()

	p := producer.Func(func(context.Context) (int, error) {
		panic("kaboom")
	})

	_, err := producer.Await(context.Background(), p)
	require.ErrorIs(t, err, producer.ErrPanic)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestFuncUnsubscribeCancelsWork(t *testing.T) {
	t.Parallel()

	cancelled := make(chan struct{})
	p := producer.Func(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})

	var delivered atomic.Bool
	sub := p.Subscribe(
		func(int) { delivered.Store(true) },
		func(error) { delivered.Store(true) },
	)
	sub.Unsubscribe()
	sub.Unsubscribe()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("work context was not cancelled")
	}
	time.Sleep(10 * time.Millisecond)
	assert.False(t, delivered.Load(), "no callback after unsubscribe")
}

func TestJustAndFailEmitSynchronously(t *testing.T) {
	t.Parallel()

	var got int
	producer.Just(5).Subscribe(func(v int) { got = v }, nil)
	assert.Equal(t, 5, got)

	boom := errors.New("boom")
	var gotErr error
	producer.Fail[int](boom).Subscribe(nil, func(err error) { gotErr = err })
	assert.ErrorIs(t, gotErr, boom)
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		producer.Just(1).Subscribe(nil, nil)
		producer.Fail[int](errors.New("x")).Subscribe(nil, nil)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	p := producer.Map(producer.Just(21), func(v int) string {
		return strconv.Itoa(v * 2)
	})
	v, err := producer.Await(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	boom := errors.New("boom")
	failed := producer.Map(producer.Fail[int](boom), func(v int) string {
		t.Fatal("map must not run on error")
		return ""
	})
	_, err = producer.Await(context.Background(), failed)
	assert.ErrorIs(t, err, boom)
}

func TestAwaitContextCancellation(t *testing.T) {
	t.Parallel()

	cancelled := make(chan struct{})
	p := producer.Func(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := producer.Await(ctx, p)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("await did not unsubscribe on context cancellation")
	}
}

func TestAwaitNilProducer(t *testing.T) {
	t.Parallel()

	_, err := producer.Await[int](context.Background(), nil)
	assert.ErrorIs(t, err, producer.ErrNilProducer)
}

func TestToFuture(t *testing.T) {
	t.Parallel()

	s := producer.ToFuture(producer.Just("ok"))
	v, err := s.Future().AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.NotPanics(t, s.Unsubscribe)
}
