package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultTTL     = time.Minute
	DefaultCleanup = 5 * time.Minute
)

// Cache is a TTL memo for estimation lookups. It satisfies estimate.Memo and
// is safe for concurrent use.
type Cache struct {
	items *gocache.Cache
	ttl   time.Duration
}

func New(ttl, cleanup time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cleanup <= 0 {
		cleanup = DefaultCleanup
	}

	return &Cache{
		items: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.items.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.items.Set(key, value, c.ttl)
}

func (c *Cache) Len() int {
	return c.items.ItemCount()
}

func (c *Cache) Flush() {
	c.items.Flush()
}
