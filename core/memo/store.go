package memo

// Store holds memo entries keyed by K. Memo serializes all calls to its
// store, so implementations do not need their own locking unless they are
// shared.
//
// Any cache in core/cache can be adapted with cache.AsStore. A store keyed by
// a type other than the Memo's key type is rejected by New.
type Store[K comparable] interface {
	Get(key K) (any, bool)
	Put(key K, value any)
	Remove(key K) bool
	Len() int
}

// MapStore is an unbounded map-backed Store. It never evicts.
type MapStore[K comparable] struct {
	entries map[K]any
}

// NewMapStore returns an empty MapStore.
func NewMapStore[K comparable]() *MapStore[K] {
	return &MapStore[K]{entries: make(map[K]any)}
}

// Get returns the entry stored under key.
func (s *MapStore[K]) Get(key K) (any, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (s *MapStore[K]) Put(key K, value any) {
	s.entries[key] = value
}

// Remove deletes key and reports whether it was present.
func (s *MapStore[K]) Remove(key K) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of entries.
func (s *MapStore[K]) Len() int {
	return len(s.entries)
}
