package repository

import (
	"context"
	"sync"
	"time"

	"github.com/kselvam/pulseboard/internal/domain/frame"
	"github.com/kselvam/pulseboard/pkg/metrics"
)

// DefaultTTL is how long a loaded frame is served from cache.
const DefaultTTL = time.Hour

type cacheEntry struct {
	frame   *frame.Frame
	expires time.Time
}

// CachedLoader wraps a Loader with a TTL cache keyed by the exact query
// text. Expired entries are replaced on the next request for the same
// query; there is no background sweeper.
type CachedLoader struct {
	mu      sync.RWMutex
	next    Loader
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCachedLoader wraps next with a TTL cache.
func NewCachedLoader(next Loader, opts ...Option) *CachedLoader {
	c := &CachedLoader{
		next:    next,
		entries: make(map[string]cacheEntry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached frame for query when fresh, otherwise delegates
// to the wrapped loader and caches the result. Failed loads are not cached,
// so the next request retries the store.
func (c *CachedLoader) Load(ctx context.Context, query string) (*frame.Frame, error) {
	c.mu.RLock()
	entry, ok := c.entries[query]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expires) {
		metrics.RecordCacheHit()
		return entry.frame, nil
	}
	metrics.RecordCacheMiss()

	start := c.now()
	f, err := c.next.Load(ctx, query)
	if err != nil {
		metrics.RecordQueryError()
		return nil, err
	}
	metrics.RecordQuery(float64(c.now().Sub(start).Milliseconds()))

	c.mu.Lock()
	c.entries[query] = cacheEntry{frame: f, expires: c.now().Add(c.ttl)}
	metrics.SetCacheEntries(len(c.entries))
	c.mu.Unlock()
	return f, nil
}

// Size returns the number of cached entries, expired ones included.
func (c *CachedLoader) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every cached entry.
func (c *CachedLoader) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	metrics.SetCacheEntries(0)
	c.mu.Unlock()
}
