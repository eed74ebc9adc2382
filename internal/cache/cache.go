package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Cache is a thread-safe LRU cache with a fixed capacity.
// When full, inserting a new key evicts the least recently used entry.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	lru      lruList[K, V]
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Get returns the cached value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(n)
	c.hits.Add(1)
	return n.value, true
}

// Set stores value under key, evicting the oldest entry if needed.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs with the cache locked, so concurrent callers never compute the
// same key twice. Keep it fast.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.lru.MoveToFront(n)
		c.hits.Add(1)
		return n.value
	}
	c.misses.Add(1)
	v := create()
	c.setLocked(key, v)
	return v
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.lru.MoveToFront(n)
		return
	}
	for c.lru.Len() >= c.capacity {
		old := c.lru.RemoveOldest()
		if old == nil {
			break
		}
		delete(c.entries, old.key)
	}
	c.entries[key] = c.lru.PushFront(key, value)
}

// Clear removes all entries. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.lru.Clear()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:    c.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
