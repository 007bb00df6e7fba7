// Package memo memoizes functions that return lazy producers.
//
// Wrap a function fn(A) producer.Producer[T] and a key function, and every
// call with an equal key returns the same shared producer. The wrapped
// function runs once per key, its producer is subscribed once no matter how
// many callers subscribe, and the outcome is replayed to late subscribers.
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/memo/core/memo"
//		"github.com/dmitrymomot/memo/pkg/producer"
//	)
//
//	fetch := func(id string) producer.Producer[*User] {
//		return producer.Func(func(ctx context.Context) (*User, error) {
//			return api.User(ctx, id)
//		})
//	}
//
//	users := memo.New(fetch, memo.KeyOf(func(id string) string { return id }))
//
//	a, err := producer.Await(ctx, users.Get("42"))
//	b, err := producer.Await(ctx, users.Get("42")) // no second request
//
// Memoize keeps the original signature for drop-in replacement:
//
//	fetch = memo.Memoize(fetch, memo.KeyOf(func(id string) string { return id }))
//
// # Keys
//
// The key function decides which arguments are the same request. Keys must be
// comparable. A key function may fail; Get then returns a producer that emits
// an error wrapping ErrKey and nothing is cached:
//
//	byQuery := func(q Query) (string, error) {
//		if q.Text == "" {
//			return "", errEmptyQuery
//		}
//		return q.Text + ":" + q.Scope, nil
//	}
//
// # Lifecycle
//
// An entry is created on the first Get for its key and lives until one of:
//
//   - every subscriber unsubscribes before the producer settles. The pending
//     work is cancelled and the entry removed, so the next Get calls the
//     wrapped function again;
//   - the producer fails and WithRetryOnError is set.
//
// Settled entries are never evicted by the default store. Use WithStore with a
// bounded store from core/cache to cap memory at the cost of re-running work
// after eviction:
//
//	store := cache.AsStore[string](cache.NewLRUCache[string, any](1000))
//	users := memo.New(fetch, key, memo.WithStore[string](store))
//
// # Errors
//
// A failure is cached exactly like a value: every current and future
// subscriber receives the same error value and the wrapped function is not
// called again for that key. A panic inside the wrapped function, or a nil
// producer returned from it, is cached as an error wrapping ErrProducer.
//
//	_, err := producer.Await(ctx, users.Get("missing"))
//	if errors.Is(err, memo.ErrKey) {
//		// bad argument, nothing cached
//	}
//
// # Observability
//
//	users := memo.New(fetch, key,
//		memo.WithLogger(log),
//		memo.WithObserver(memo.ObserverFunc(func(e memo.EventData) {
//			metrics.Inc(e.Event.String())
//		})),
//	)
//
//	s := users.Stats()
//	fmt.Println(s.Hits, s.Misses, s.Entries)
package memo
