package passive

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// cachedStatsEntry wraps a snapshot with version metadata for invalidation
type cachedStatsEntry struct {
	Version  string
	Stats    domain.PassiveAggregate
	CachedAt time.Time
}

// statsCache is an in-memory LRU of derived stats with time-based expiry
type statsCache struct {
	lru *expirable.LRU[string, *cachedStatsEntry]
}

func newStatsCache(size int, ttl time.Duration) *statsCache {
	if size <= 0 {
		size = DefaultStatsCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultStatsCacheTTL
	}
	return &statsCache{
		lru: expirable.NewLRU[string, *cachedStatsEntry](size, nil, ttl),
	}
}

// Get returns the cached stats. Entries written under another schema
// version are removed and reported as misses.
func (c *statsCache) Get(playerID string) (domain.PassiveAggregate, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return domain.PassiveAggregate{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return domain.PassiveAggregate{}, false
	}
	return entry.Stats, true
}

func (c *statsCache) Set(playerID string, stats domain.PassiveAggregate) {
	c.lru.Add(playerID, &cachedStatsEntry{
		Version:  CacheSchemaVersion,
		Stats:    stats,
		CachedAt: time.Now(),
	})
}

func (c *statsCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

func (c *statsCache) Len() int {
	return c.lru.Len()
}
