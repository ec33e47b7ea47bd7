package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/teamlens/internal/model"
)

// MemoryCache implements in-memory report caching with expiration.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache. Entries expire after ttl and
// are swept every cleanupInterval.
func NewMemoryCache(ttl time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get retrieves a report from the cache.
func (c *MemoryCache) Get(key string) (*model.Report, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.Report), true
	}
	return nil, false
}

// Set stores a report in the cache with the default TTL.
func (c *MemoryCache) Set(key string, report *model.Report) {
	c.cache.SetDefault(key, report)
}

// Clear removes all reports from the cache.
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
