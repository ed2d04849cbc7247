package shader

import (
	"container/list"
	"crypto/sha256"
	"sync"
)

// DefaultCacheSize is the number of compiled shaders a Cache keeps.
const DefaultCacheSize = 32

// Cache keeps the SPIR-V of recently compiled WGSL sources, keyed by a hash
// of the source. The least recently used entry is evicted when the cache is
// full.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	limit   int
	order   *list.List // front is most recently used
	entries map[[sha256.Size]byte]*list.Element

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	key   [sha256.Size]byte
	words []uint32
}

// CacheStats reports cache usage.
type CacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// NewCache creates a Cache holding up to limit shaders. A limit of 0 or less
// uses DefaultCacheSize.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheSize
	}
	return &Cache{
		limit:   limit,
		order:   list.New(),
		entries: make(map[[sha256.Size]byte]*list.Element),
	}
}

// Compile returns the SPIR-V for source, compiling it on a miss. Failed
// compilations are not cached. The returned slice is shared and must not be
// modified.
func (c *Cache) Compile(source string) ([]uint32, error) {
	key := sha256.Sum256([]byte(source))

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		c.hits++
		words := el.Value.(*cacheEntry).words
		c.mu.Unlock()
		return words, nil
	}
	c.misses++
	c.mu.Unlock()

	// Compile outside the lock; a concurrent miss on the same source
	// compiles twice and the second insert wins.
	words, err := CompileWGSL(source)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).words, nil
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, words: words})
	for c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	return words, nil
}

// Stats returns the number of cached shaders and the hit and miss counts.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Len: c.order.Len(), Hits: c.hits, Misses: c.misses}
}

// Clear drops every cached shader. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)
}

var defaultCache = NewCache(DefaultCacheSize)
