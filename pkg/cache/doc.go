// Package cache provides a generic, thread-safe LRU cache used to keep
// per-session state in memory under a fixed bound.
//
// Sessions are created lazily with GetOrCreate, which performs the lookup and
// the insertion under one lock:
//
//	sessions := cache.NewLRUCache[string, *toast.Center](10000)
//	sessions.SetEvictCallback(func(id string, c *toast.Center) {
//		_ = c.Close()
//	})
//
//	center, existed := sessions.GetOrCreate(sessionID, func() *toast.Center {
//		return toast.NewCenter()
//	})
//
// The eviction callback fires for every item that leaves the cache: capacity
// eviction, Remove and Clear. It runs with the cache lock held.
//
// Get and Put mark an item as recently used; Peek does not.
package cache
