package cache

// Cache is the behavior shared by LRUCache and TTLCache.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Remove(key K) (V, bool)
	Len() int
}

// Store adapts a Cache with any-typed values to the entry store interface
// used by memo.WithStore.
type Store[K comparable] struct {
	c Cache[K, any]
}

// AsStore wraps c so it can back a memo keyed by K.
func AsStore[K comparable](c Cache[K, any]) *Store[K] {
	return &Store[K]{c: c}
}

// Get returns the entry stored under key.
func (s *Store[K]) Get(key K) (any, bool) {
	return s.c.Get(key)
}

// Put stores value under key. The underlying cache may evict another entry.
func (s *Store[K]) Put(key K, value any) {
	s.c.Put(key, value)
}

// Remove deletes key and reports whether it was present.
func (s *Store[K]) Remove(key K) bool {
	_, removed := s.c.Remove(key)
	return removed
}

// Len returns the number of entries.
func (s *Store[K]) Len() int {
	return s.c.Len()
}
