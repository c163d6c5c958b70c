package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is a bounded, time-expiring store for synthesized audio payloads.
// It is shared mutable state across concurrent requests; a single mutex
// guards every read-modify-write sequence so the capacity and TTL
// invariants hold under parallel Get/Put calls.
//
// The cache is an optimization layer, not a correctness-critical store:
// no operation returns an error, and losing all contents only costs
// latency on the next synthesis call.
type Cache struct {
	capacity int
	ttl      time.Duration

	mu      sync.Mutex
	items   map[string]*list.Element
	inserts *list.List // front = newest insertion, back = oldest

	stats Stats
}

// cacheEntry is the stored record for one key. Entries are never mutated in
// place; a Put on an existing key replaces payload and timestamp together.
type cacheEntry struct {
	key       string
	payload   []byte
	createdAt time.Time
}

// New creates a cache with the given entry capacity and TTL. Non-positive
// values fall back to DefaultCapacity and DefaultTTL.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element),
		inserts:  list.New(),
		stats: Stats{
			Capacity: capacity,
			TTL:      ttl,
		},
	}
}

// Get returns the payload for key if present and not expired. An expired
// entry is removed as a side effect of the lookup and reported absent, so
// callers must not assume the cache is unchanged after a Get.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if time.Since(entry.createdAt) > c.ttl {
		c.removeElement(elem)
		c.stats.Expirations++
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry.payload, true
}

// Put inserts or replaces the entry for key with a fresh timestamp. When
// inserting a new key into a full cache, the single oldest-by-insertion
// entry is evicted first, so the entry count never exceeds capacity.
//
// The payload is owned by the cache once inserted; callers must not mutate
// it afterwards.
func (c *Cache) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		// Upsert: replace payload and timestamp, and move the entry to
		// the newest insertion position.
		entry := elem.Value.(*cacheEntry)
		entry.payload = payload
		entry.createdAt = time.Now()
		c.inserts.MoveToFront(elem)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	elem := c.inserts.PushFront(&cacheEntry{
		key:       key,
		payload:   payload,
		createdAt: time.Now(),
	})
	c.items[key] = elem
}

// Contains reports whether key is present and unexpired, without counting
// a hit or miss and without evicting.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	return time.Since(elem.Value.(*cacheEntry).createdAt) <= c.ttl
}

// Len returns the number of physically present entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.inserts.Init()
}

// Prune removes every expired entry and returns how many were removed.
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	pruned := 0

	// Oldest insertions sit at the back; stop at the first live entry
	// since anything newer cannot have expired either.
	for elem := c.inserts.Back(); elem != nil; {
		entry := elem.Value.(*cacheEntry)
		if time.Since(entry.createdAt) <= c.ttl {
			break
		}
		prev := elem.Prev()
		c.removeElement(elem)
		c.stats.Expirations++
		pruned++
		elem = prev
	}

	return pruned
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Entries = len(c.items)
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

// evictOldest removes the oldest-by-insertion entry (lock must be held).
func (c *Cache) evictOldest() {
	if elem := c.inserts.Back(); elem != nil {
		c.removeElement(elem)
		c.stats.Evictions++
	}
}

// removeElement removes an element from both structures (lock must be held).
func (c *Cache) removeElement(elem *list.Element) {
	c.inserts.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).key)
}
