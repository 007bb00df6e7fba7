package redis_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memo/integration/database/redis"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("bad scheme", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}

func TestConnectLive(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: url, RetryAttempts: 1, ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Healthcheck(client)(ctx))

	store := redis.NewResponseStore(client, "memo-test:")
	require.NoError(t, store.Set(ctx, "k", []byte(`{"ok":true}`), time.Minute))

	data, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

type fakeClient struct {
	data   map[string][]byte
	ttl    time.Duration
	getErr error
	setErr error
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(string(v), nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	if f.setErr != nil {
		return goredis.NewStatusResult("", f.setErr)
	}
	f.data[key] = value.([]byte)
	f.ttl = ttl
	return goredis.NewStatusResult("OK", nil)
}

func TestResponseStore(t *testing.T) {
	t.Parallel()

	t.Run("set and get with prefix", func(t *testing.T) {
		t.Parallel()
		fc := &fakeClient{data: map[string][]byte{}}
		store := redis.NewResponseStore(fc, "gql:")

		require.NoError(t, store.Set(context.Background(), "abc", []byte("payload"), time.Minute))
		assert.Contains(t, fc.data, "gql:abc")
		assert.Equal(t, time.Minute, fc.ttl)

		data, ok, err := store.Get(context.Background(), "abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		store := redis.NewResponseStore(&fakeClient{data: map[string][]byte{}}, "")
		_, ok, err := store.Get(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("client errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		store := redis.NewResponseStore(&fakeClient{getErr: boom, setErr: boom}, "")

		_, _, err := store.Get(context.Background(), "k")
		assert.ErrorIs(t, err, redis.ErrStoreFailed)
		assert.ErrorIs(t, err, boom)

		err = store.Set(context.Background(), "k", nil, 0)
		assert.ErrorIs(t, err, redis.ErrStoreFailed)
	})
}
