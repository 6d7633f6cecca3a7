package classify

import (
	"sync"

	"github.com/rupeeroute/rupee-route/internal/model"
)

// merchantCache maps case-folded merchant names to resolved categories.
// No eviction and no size bound: the scope is a single categorization
// session, and the owning Classifier is discarded to reset it.
type merchantCache struct {
	entries map[string]model.Category
	mu      sync.RWMutex
}

func newMerchantCache() *merchantCache {
	return &merchantCache{
		entries: make(map[string]model.Category),
	}
}

func (c *merchantCache) get(name string) (model.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, ok := c.entries[name]
	return category, ok
}

func (c *merchantCache) set(name string, category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[name] = category
}

func (c *merchantCache) snapshot() map[string]model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]model.Category, len(c.entries))
	for name, category := range c.entries {
		out[name] = category
	}
	return out
}

func (c *merchantCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
