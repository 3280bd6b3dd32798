package wininput

import (
	"github.com/frudas24/flashgestures/internal/gesture"
	lru "github.com/hashicorp/golang-lru"
)

// ClassCache memoizes window class names. Every hooked mouse move walks the
// parent chain, so lookups are cached by handle. Size 0 disables caching.
type ClassCache struct {
	cache  *lru.Cache
	lookup func(gesture.Window) string
}

// NewClassCache returns a cache of size entries in front of lookup.
func NewClassCache(size int, lookup func(gesture.Window) string) *ClassCache {
	c := &ClassCache{lookup: lookup}
	if size > 0 {
		// lru.New only fails for non-positive sizes.
		c.cache, _ = lru.New(size)
	}
	return c
}

// Class returns the class name of w. Empty names are not cached so that a
// failed lookup is retried.
func (c *ClassCache) Class(w gesture.Window) string {
	if c.cache == nil {
		return c.lookup(w)
	}
	if v, ok := c.cache.Get(w); ok {
		return v.(string)
	}
	name := c.lookup(w)
	if name != "" {
		c.cache.Add(w, name)
	}
	return name
}

// Forget drops w, for handles known to be destroyed.
func (c *ClassCache) Forget(w gesture.Window) {
	if c.cache != nil {
		c.cache.Remove(w)
	}
}

// Len returns how many names are cached.
func (c *ClassCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
