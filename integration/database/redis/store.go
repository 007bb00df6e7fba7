package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/memo/pkg/graphql"
)

var _ graphql.ResponseStore = (*ResponseStore)(nil)

// Client is the subset of go-redis used by ResponseStore.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

// ResponseStore keeps GraphQL response payloads in Redis so that separate
// processes share them.
type ResponseStore struct {
	client Client
	prefix string
}

// NewResponseStore creates a store writing keys as prefix+key.
func NewResponseStore(client Client, prefix string) *ResponseStore {
	return &ResponseStore{client: client, prefix: prefix}
}

// Get returns the payload stored under key. A missing key is not an error.
func (s *ResponseStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStoreFailed, err)
	}
	return data, true, nil
}

// Set stores data under key. A zero ttl keeps the key until Redis evicts it.
func (s *ResponseStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
