// Package cache provides thread-safe bounded caches built on
// hashicorp/golang-lru, and an adapter that lets them back a memo.
//
// # LRU Cache
//
//	import "github.com/dmitrymomot/memo/core/cache"
//
//	c := cache.NewLRUCache[string, []byte](1000)
//	c.Put("global", payload)
//
//	if v, ok := c.Get("global"); ok {
//		use(v)
//	}
//
//	if v, ok := c.Remove("global"); ok {
//		release(v)
//	}
//
// The evict callback fires only for capacity evictions, never for Remove or
// Clear, and runs after the cache lock is released:
//
//	c.SetEvictCallback(func(key string, v []byte) {
//		log.Debug("evicted", logger.CacheKey(key))
//	})
//
// # TTL Cache
//
// TTLCache adds a fixed time to live on top of LRU eviction:
//
//	c := cache.NewTTLCache[string, any](0, 10*time.Minute) // no size limit
//
// # Backing a Memo
//
// A memo never evicts on its own. Wrap a cache with AsStore to bound it:
//
//	store := cache.AsStore[string](cache.NewTTLCache[string, any](500, time.Minute))
//	lookup := memo.New(fetch, memo.KeyOf(spec), memo.WithStore[string](store))
//
// An evicted entry is forgotten, so the next call for its key runs the wrapped
// function again. Subscribers already holding the evicted producer are not
// affected.
package cache
