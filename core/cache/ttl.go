package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTLCache is a thread-safe LRU cache whose entries also expire after a fixed
// time to live. A capacity of zero means no size limit.
type TTLCache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// NewTTLCache creates a cache whose entries live for ttl.
func NewTTLCache[K comparable, V any](capacity int, ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{lru: expirable.NewLRU[K, V](capacity, nil, ttl)}
}

// Get returns the value for key if present and not expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Put stores value under key and restarts its TTL.
func (c *TTLCache[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

// Remove deletes key and returns its value.
func (c *TTLCache[K, V]) Remove(key K) (V, bool) {
	v, ok := c.lru.Peek(key)
	if !ok {
		return v, false
	}
	return v, c.lru.Remove(key)
}

// Len returns the number of entries, expired ones included until they are swept.
func (c *TTLCache[K, V]) Len() int {
	return c.lru.Len()
}

// Clear drops every entry.
func (c *TTLCache[K, V]) Clear() {
	c.lru.Purge()
}
