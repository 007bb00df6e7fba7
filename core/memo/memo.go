package memo

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/memo/core/logger"
	"github.com/dmitrymomot/memo/pkg/producer"
)

// KeyFunc derives the cache key for an argument.
// Arguments with equal keys are treated as the same request.
type KeyFunc[A any, K comparable] func(A) (K, error)

// KeyOf adapts an infallible key function.
func KeyOf[A any, K comparable](fn func(A) K) KeyFunc[A, K] {
	return func(a A) (K, error) {
		return fn(a), nil
	}
}

// Memo memoizes a producer-returning function by key.
//
// For every distinct key the wrapped function is called at most once while
// the entry lives, and every caller gets the same shared producer. The shared
// producer runs the underlying work once for all of its subscribers and
// replays the outcome, value or error, to anyone subscribing later.
//
// Entries are never evicted by the default store. An entry is dropped only when
// every subscriber unsubscribes before the work settles; the next Get for that
// key calls the wrapped function again. Errors are cached like values unless
// WithRetryOnError is set.
type Memo[A any, K comparable, T any] struct {
	fn  func(A) producer.Producer[T]
	key KeyFunc[A, K]

	mu    sync.Mutex
	store Store[K]

	logger       *slog.Logger
	observer     Observer
	retryOnError bool

	hits        atomic.Int64
	misses      atomic.Int64
	invocations atomic.Int64
	settled     atomic.Int64
	failed      atomic.Int64
	abandoned   atomic.Int64
	keyErrors   atomic.Int64
}

// New creates a Memo around fn using key to derive cache keys.
// It panics if a store passed with WithStore is keyed by a type other than K.
//
// Example:
//
//	users := memo.New(
//		func(id string) producer.Producer[*User] {
//			return producer.Func(func(ctx context.Context) (*User, error) {
//				return api.FetchUser(ctx, id)
//			})
//		},
//		memo.KeyOf(func(id string) string { return id }),
//	)
//
//	user, err := producer.Await(ctx, users.Get("42"))
func New[A any, K comparable, T any](fn func(A) producer.Producer[T], key KeyFunc[A, K], opts ...Option) *Memo[A, K, T] {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var store Store[K] = NewMapStore[K]()
	if o.store != nil {
		s, ok := o.store.(Store[K])
		if !ok {
			panic(fmt.Sprintf("memo: store %T does not accept keys of type %s", o.store, reflect.TypeFor[K]()))
		}
		store = s
	}

	return &Memo[A, K, T]{
		fn:           fn,
		key:          key,
		store:        store,
		logger:       o.logger,
		observer:     o.observer,
		retryOnError: o.retryOnError,
	}
}

// Memoize returns a memoized version of fn with the same signature.
// It is shorthand for New(fn, key, opts...).Get.
func Memoize[A any, K comparable, T any](fn func(A) producer.Producer[T], key KeyFunc[A, K], opts ...Option) func(A) producer.Producer[T] {
	return New(fn, key, opts...).Get
}

// Get returns the shared producer for a's key, calling the wrapped function on a miss.
//
// Get never fails directly. Key derivation errors and failures of the wrapped
// function surface through the returned producer's error callback. Key errors
// are not cached. Failures of the wrapped function are.
func (m *Memo[A, K, T]) Get(a A) producer.Producer[T] {
	k, err := m.deriveKey(a)
	if err != nil {
		m.keyErrors.Add(1)
		m.logger.Warn("memo: key derivation failed", logger.Error(err))
		m.emit(EventKeyError, nil, err)
		return producer.Fail[T](err)
	}

	m.mu.Lock()
	if v, ok := m.store.Get(k); ok {
		if s, ok := v.(*shared[T]); ok {
			m.mu.Unlock()
			m.hits.Add(1)
			m.emit(EventHit, k, nil)
			return s
		}
	}

	s := newShared(func() producer.Producer[T] { return m.invoke(a) })
	s.onSettle = func(s *shared[T], err error) { m.settle(k, s, err) }
	s.onAbandon = func(s *shared[T]) { m.abandon(k, s) }
	s.onRevive = func(s *shared[T]) { m.revive(k, s) }
	m.store.Put(k, s)
	m.mu.Unlock()

	m.misses.Add(1)
	m.logger.Debug("memo: miss", logger.CacheKey(k))
	m.emit(EventMiss, k, nil)

	// The wrapped function is called outside the lock so it may use the memo itself.
	s.init()
	return s
}

// Func returns Get as a plain function, for drop-in replacement at call sites.
func (m *Memo[A, K, T]) Func() func(A) producer.Producer[T] {
	return m.Get
}

// Len returns the number of cached entries.
func (m *Memo[A, K, T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Len()
}

// Stats returns a snapshot of the memo counters.
func (m *Memo[A, K, T]) Stats() Stats {
	return Stats{
		Hits:        m.hits.Load(),
		Misses:      m.misses.Load(),
		Invocations: m.invocations.Load(),
		Settled:     m.settled.Load(),
		Failed:      m.failed.Load(),
		Abandoned:   m.abandoned.Load(),
		KeyErrors:   m.keyErrors.Load(),
		Entries:     m.Len(),
	}
}

func (m *Memo[A, K, T]) deriveKey(a A) (k K, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrKey, r)
		}
	}()

	k, err = m.key(a)
	if err != nil {
		return k, fmt.Errorf("%w: %w", ErrKey, err)
	}
	return k, nil
}

// invoke calls the wrapped function. A panic or a nil producer becomes the
// entry's terminal error, the same as an error emitted by the producer.
func (m *Memo[A, K, T]) invoke(a A) (p producer.Producer[T]) {
	m.invocations.Add(1)

	defer func() {
		if r := recover(); r != nil {
			p = producer.Fail[T](fmt.Errorf("%w: panic: %v", ErrProducer, r))
		}
	}()

	p = m.fn(a)
	if p == nil {
		return producer.Fail[T](fmt.Errorf("%w: nil producer", ErrProducer))
	}
	return p
}

func (m *Memo[A, K, T]) settle(k K, s *shared[T], err error) {
	if err == nil {
		m.settled.Add(1)
		m.logger.Debug("memo: settled", logger.CacheKey(k), logger.Outcome("value"))
		m.emit(EventSettled, k, nil)
		return
	}

	m.failed.Add(1)
	m.logger.Debug("memo: settled", logger.CacheKey(k), logger.Outcome("error"), logger.Error(err))
	m.emit(EventFailed, k, err)

	if m.retryOnError {
		m.removeIfCurrent(k, s)
	}
}

func (m *Memo[A, K, T]) abandon(k K, s *shared[T]) {
	m.abandoned.Add(1)
	removed := m.removeIfIdle(k, s)
	m.logger.Debug("memo: abandoned", logger.CacheKey(k), logger.Outcome("cancelled"), logger.Removed(removed))
	m.emit(EventAbandoned, k, nil)
}

// revive puts a restarted orphan back under k unless another entry took its
// place, so later callers share the run it started.
func (m *Memo[A, K, T]) revive(k K, s *shared[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.store.Get(k); ok {
		return
	}
	m.store.Put(k, s)
	m.logger.Debug("memo: revived", logger.CacheKey(k))
}

// removeIfCurrent deletes k only if it still maps to s, so a stale entry
// never removes its replacement.
func (m *Memo[A, K, T]) removeIfCurrent(k K, s *shared[T]) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isCurrent(k, s) {
		return false
	}
	return m.store.Remove(k)
}

// removeIfIdle is removeIfCurrent for abandonment. A Get may hit s and
// resubscribe between the last unsubscribe and this call; s then runs again
// and must stay. Lock order is m.mu then s.mu.
func (m *Memo[A, K, T]) removeIfIdle(k K, s *shared[T]) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isCurrent(k, s) || !s.idle() {
		return false
	}
	return m.store.Remove(k)
}

// isCurrent must be called with m.mu held.
func (m *Memo[A, K, T]) isCurrent(k K, s *shared[T]) bool {
	cur, ok := m.store.Get(k)
	if !ok {
		return false
	}
	cs, ok := cur.(*shared[T])
	return ok && cs == s
}
