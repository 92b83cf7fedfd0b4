package command

import (
	"reflect"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	// cacheCapacity bounds the number of cached definitions. Handler types are
	// static in practice, so this is generous.
	cacheCapacity = 100
	// cacheIdleTTL evicts definitions nobody has asked for in a long while.
	// Hits refresh the TTL.
	cacheIdleTTL = 6 * time.Hour
)

// Cache memoizes Build output keyed by the handler's dynamic type. Building a
// definition walks and validates the whole descriptor, and handlers are
// usually registered once per process but may be re-registered, so the cache
// keeps hit rates near 100% for static handler types. Safe for concurrent use.
type Cache struct {
	defs *ttlcache.Cache[reflect.Type, *Definition]
}

// NewCache returns an empty definition cache.
func NewCache() *Cache {
	return &Cache{
		defs: ttlcache.New[reflect.Type, *Definition](
			ttlcache.WithTTL[reflect.Type, *Definition](cacheIdleTTL),
			ttlcache.WithCapacity[reflect.Type, *Definition](cacheCapacity),
		),
	}
}

// Definition returns the cached definition for the handler's type, building
// and storing it on first sight. Build failures are not cached.
func (c *Cache) Definition(h Handler) (*Definition, error) {
	if h == nil {
		return Build(h)
	}
	key := reflect.TypeOf(h)
	if item := c.defs.Get(key); item != nil {
		return item.Value(), nil
	}
	def, err := Build(h)
	if err != nil {
		return nil, err
	}
	c.defs.Set(key, def, ttlcache.DefaultTTL)
	return def, nil
}

// Len reports how many definitions are currently cached.
func (c *Cache) Len() int { return c.defs.Len() }

// Clear drops every cached definition.
func (c *Cache) Clear() { c.defs.DeleteAll() }
