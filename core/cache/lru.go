package cache

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type evicted[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a thread-safe fixed-capacity cache that evicts the least
// recently used entry when full.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[K, V]
	onEvict  func(K, V)
	pending  []evicted[K, V]
	explicit bool
}

// NewLRUCache creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	c := &LRUCache[K, V]{}
	l, err := simplelru.NewLRU[K, V](capacity, c.collect)
	if err != nil {
		panic(fmt.Sprintf("cache: invalid capacity %d: %v", capacity, err))
	}
	c.lru = l
	return c
}

// collect runs under c.mu; callbacks fire after the lock is released.
func (c *LRUCache[K, V]) collect(key K, value V) {
	if c.explicit || c.onEvict == nil {
		return
	}
	c.pending = append(c.pending, evicted[K, V]{key: key, value: value})
}

func (c *LRUCache[K, V]) unlockAndNotify() {
	pending := c.pending
	c.pending = nil
	cb := c.onEvict
	c.mu.Unlock()

	for _, e := range pending {
		cb(e.key, e.value)
	}
}

// Get returns the value for key and marks it recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

// Put stores value under key, evicting the oldest entry if the cache is full.
func (c *LRUCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.lru.Add(key, value)
	c.unlockAndNotify()
}

// Remove deletes key and returns its value. The evict callback is not called.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Peek(key)
	if !ok {
		return v, false
	}
	c.explicit = true
	c.lru.Remove(key)
	c.explicit = false
	return v, true
}

// Len returns the number of entries.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear drops every entry without calling the evict callback.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.explicit = true
	c.lru.Purge()
	c.explicit = false
}

// SetEvictCallback registers fn to run when an entry is evicted for capacity.
// fn runs outside the cache lock and may use the cache.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}
