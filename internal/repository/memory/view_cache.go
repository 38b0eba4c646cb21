package memory

import (
	"time"

	"deal-insights-be/pkg/filter"

	"github.com/patrickmn/go-cache"
)

// ViewCache memoizes computed views keyed by a canonical rendering of the
// filter state. The record set is immutable, so entries only age out.
type ViewCache struct {
	cache *cache.Cache
}

func NewViewCache(ttl time.Duration) *ViewCache {
	return &ViewCache{cache: cache.New(ttl, 2*ttl)}
}

func (c *ViewCache) Get(key string) (filter.View, bool) {
	if x, found := c.cache.Get(key); found {
		return x.(filter.View), true
	}
	return filter.View{}, false
}

func (c *ViewCache) Set(key string, view filter.View) {
	c.cache.Set(key, view, cache.DefaultExpiration)
}

func (c *ViewCache) Len() int {
	return c.cache.ItemCount()
}
