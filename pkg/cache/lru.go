package cache

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a bounded map safe for concurrent use. Inserting past capacity
// drops the least recently used entry.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	index    map[K]*list.Element
	order    *list.List // front is most recent
	onEvict  func(key K, value V)
}

// NewLRUCache returns an empty cache holding at most capacity entries.
// It panics on a non-positive capacity.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		index:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// SetEvictCallback registers fn for every entry that leaves the cache, be it
// through capacity eviction, Remove or Clear. fn runs under the cache lock.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it most recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key, true)
}

// Peek returns the value for key leaving its recency untouched.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key, false)
}

// GetOrCreate returns the value for key, storing create() first when it is
// missing. Concurrent callers for one key always observe the same value.
// The boolean is true when the value was already cached.
func (c *LRUCache[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lookup(key, true); ok {
		return v, true
	}
	v := create()
	c.insert(key, v)
	return v, false
}

// Put stores value under key and returns the value it replaced, if any.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		e := el.Value.(*lruEntry[K, V])
		prev := e.value
		e.value = value
		return prev, true
	}
	c.insert(key, value)
	var zero V
	return zero, false
}

// Remove deletes key and returns the value it held.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.drop(el).value, true
}

// Len reports the number of entries.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Clear empties the cache, handing entries to the evict callback from the
// least to the most recently used.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.order.Len() > 0 {
		c.drop(c.order.Back())
	}
}

func (c *LRUCache[K, V]) lookup(key K, touch bool) (V, bool) {
	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	if touch {
		c.order.MoveToFront(el)
	}
	return el.Value.(*lruEntry[K, V]).value, true
}

func (c *LRUCache[K, V]) insert(key K, value V) {
	c.index[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.drop(c.order.Back())
	}
}

func (c *LRUCache[K, V]) drop(el *list.Element) *lruEntry[K, V] {
	e := c.order.Remove(el).(*lruEntry[K, V])
	delete(c.index, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
	return e
}
