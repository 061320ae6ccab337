package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studentorbit/toastkit/pkg/cache"
)

// sessions returns a cache recording every evicted key in order.
func sessions(capacity int) (*cache.LRUCache[string, int], *[]string) {
	c := cache.NewLRUCache[string, int](capacity)
	evicted := &[]string{}
	c.SetEvictCallback(func(key string, _ int) {
		*evicted = append(*evicted, key)
	})
	return c, evicted
}

func TestLRUCache_PutGet(t *testing.T) {
	c, evicted := sessions(2)

	prev, existed := c.Put("s1", 1)
	assert.False(t, existed)
	assert.Zero(t, prev)

	prev, existed = c.Put("s1", 10)
	assert.True(t, existed)
	assert.Equal(t, 1, prev)

	v, ok := c.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, *evicted, "updates never evict")
}

func TestLRUCache_Eviction(t *testing.T) {
	tests := []struct {
		name  string
		touch func(c *cache.LRUCache[string, int])
		want  string
	}{
		{name: "oldest goes first", touch: func(*cache.LRUCache[string, int]) {}, want: "s1"},
		{name: "get refreshes", touch: func(c *cache.LRUCache[string, int]) { c.Get("s1") }, want: "s2"},
		{name: "put refreshes", touch: func(c *cache.LRUCache[string, int]) { c.Put("s1", 5) }, want: "s2"},
		{name: "peek does not refresh", touch: func(c *cache.LRUCache[string, int]) { c.Peek("s1") }, want: "s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, evicted := sessions(2)
			c.Put("s1", 1)
			c.Put("s2", 2)
			tt.touch(c)
			c.Put("s3", 3)

			assert.Equal(t, []string{tt.want}, *evicted)
			assert.Equal(t, 2, c.Len())
			_, ok := c.Peek(tt.want)
			assert.False(t, ok)
		})
	}
}

func TestLRUCache_Remove(t *testing.T) {
	c, evicted := sessions(3)
	c.Put("s1", 1)

	v, ok := c.Remove("s1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"s1"}, *evicted, "remove releases the value")

	_, ok = c.Remove("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRUCache_CapacityOne(t *testing.T) {
	c, evicted := sessions(1)
	c.Put("s1", 1)
	c.Put("s2", 2)

	assert.Equal(t, []string{"s1"}, *evicted)
	v, ok := c.Get("s2")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		assert.Panics(t, func() { cache.NewLRUCache[string, int](capacity) })
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := cache.NewLRUCache[int, int](50)

	var wg sync.WaitGroup
	for i := range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put(i, i)
			c.Get(i / 2)
			if i%3 == 0 {
				c.Remove(i)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}

func TestLRUCache_GetOrCreate(t *testing.T) {
	t.Run("creates once", func(t *testing.T) {
		c := cache.NewLRUCache[string, *int](2)
		calls := 0
		create := func() *int {
			calls++
			v := calls
			return &v
		}

		first, existed := c.GetOrCreate("a", create)
		assert.False(t, existed)

		second, existed := c.GetOrCreate("a", create)
		assert.True(t, existed)
		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("evicts past capacity", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		var evicted []string
		c.SetEvictCallback(func(key string, _ int) {
			evicted = append(evicted, key)
		})

		c.GetOrCreate("a", func() int { return 1 })
		c.GetOrCreate("b", func() int { return 2 })
		c.GetOrCreate("a", func() int { return 99 })
		c.GetOrCreate("c", func() int { return 3 })

		assert.Equal(t, []string{"b"}, evicted)
		val, ok := c.Peek("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("concurrent callers share one value", func(t *testing.T) {
		c := cache.NewLRUCache[string, *int](10)

		var wg sync.WaitGroup
		results := make([]*int, 50)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = c.GetOrCreate("shared", func() *int { return new(int) })
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})
}

func TestLRUCache_Peek(t *testing.T) {
	c := cache.NewLRUCache[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)

	// Peek must not refresh "a".
	val, ok := c.Peek("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	c.Put("c", 3)

	_, ok = c.Peek("a")
	assert.False(t, ok, "a should have been evicted")

	_, ok = c.Peek("missing")
	assert.False(t, ok)
}

func TestLRUCache_ClearOrder(t *testing.T) {
	c := cache.NewLRUCache[string, int](3)
	var order []string
	c.SetEvictCallback(func(key string, _ int) {
		order = append(order, key)
	})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Get("a")

	c.Clear()

	assert.Equal(t, []string{"b", "c", "a"}, order)
	assert.Equal(t, 0, c.Len())
}
