// Package pool resolves asset pairs to liquidity pool snapshots, combining
// a bounded TTL cache with a pluggable pool source.
package pool

import (
	"sync"
	"time"

	"blitzswap/internal/model"
)

// pairKey identifies an unordered asset pair. The constructor sorts the two
// ids so (X, Y) and (Y, X) map to the same key.
type pairKey struct {
	lo model.AssetID
	hi model.AssetID
}

func newPairKey(a, b model.AssetID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

type cacheEntry struct {
	pool       model.PoolInfo
	insertedAt time.Time
}

// Cache is a bounded, TTL-based store of pool snapshots keyed by unordered
// asset pair. Entries older than the TTL are logically absent; staleness is
// entirely time-driven, there is no explicit invalidation.
//
// Get and Put are individually safe under concurrent callers, but the cache
// does not de-duplicate concurrent misses: two callers may both miss and
// both re-fetch the same pair. Put is idempotent for identical source data,
// so duplicate upstream fetches are harmless.
type Cache struct {
	mu       sync.RWMutex
	entries  map[pairKey]cacheEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewCache builds a cache with the given staleness window and entry bound.
func NewCache(ttl time.Duration, capacity int) *Cache {
	return &Cache{
		entries:  make(map[pairKey]cacheEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Get returns a fresh snapshot for the unordered pair (a, b), reoriented so
// AssetA equals a. Stale or missing entries report false.
func (c *Cache) Get(a, b model.AssetID) (model.PoolInfo, bool) {
	c.mu.RLock()
	entry, ok := c.entries[newPairKey(a, b)]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.insertedAt) >= c.ttl {
		return model.PoolInfo{}, false
	}
	return entry.pool.OrientedFor(a)
}

// Put inserts or overwrites the snapshot for the pool's pair, stamped with
// the current time. If inserting a new pair would push the entry count past
// capacity, the whole cache is cleared first. Full-clear eviction trades
// hit rate for predictability over an LRU policy.
func (c *Cache) Put(p model.PoolInfo) {
	key := newPairKey(p.AssetA, p.AssetB)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries)+1 > c.capacity {
		c.entries = make(map[pairKey]cacheEntry)
	}
	c.entries[key] = cacheEntry{pool: p, insertedAt: c.now()}
}

// Len reports the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
