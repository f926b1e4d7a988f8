package gemini

import (
	"sync"
	"time"
)

// descriptionCache memoizes lookup results per normalized CID code for a
// bounded window, so repeated edits referencing the same code do not hit the
// external service again. Expiry is checked on read; there is no background
// eviction.
type descriptionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value    string
	storedAt time.Time
}

func newDescriptionCache(ttl time.Duration) *descriptionCache {
	return &descriptionCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *descriptionCache) get(code string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[code]
	if !ok {
		return "", false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, code)
		return "", false
	}
	return entry.value, true
}

func (c *descriptionCache) put(code, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[code] = cacheEntry{value: value, storedAt: time.Now()}
}
