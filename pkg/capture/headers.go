package capture

import (
	"sync"
	"time"
)

type headerEntry struct {
	headers map[string]string
	expires time.Time
}

// HeaderCache holds request headers keyed by request id for the short
// window between request start and response classification. Entries expire
// after the configured TTL so abandoned requests don't accumulate.
type HeaderCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]headerEntry
	now     func() time.Time
}

func NewHeaderCache(ttl time.Duration) *HeaderCache {
	return &HeaderCache{
		ttl:     ttl,
		entries: make(map[string]headerEntry),
		now:     time.Now,
	}
}

func (c *HeaderCache) Put(requestID string, headers map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()
	c.entries[requestID] = headerEntry{
		headers: headers,
		expires: c.now().Add(c.ttl),
	}
}

// Get returns the headers for a request id, or false when missing or
// expired. The entry is consumed: one response per request.
func (c *HeaderCache) Get(requestID string) (map[string]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[requestID]
	if !ok {
		return nil, false
	}

	delete(c.entries, requestID)

	if c.now().After(entry.expires) {
		return nil, false
	}
	return entry.headers, true
}

func (c *HeaderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictExpired drops stale entries. Called under lock on every Put, which
// bounds the map without a background goroutine.
func (c *HeaderCache) evictExpired() {
	now := c.now()
	for id, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, id)
		}
	}
}
