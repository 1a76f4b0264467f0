package embedding

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long cached embeddings stay valid.
const DefaultCacheTTL = 15 * time.Minute

type cacheEntry struct {
	vec     []float32
	expires time.Time
}

// Cache wraps an Embedder with an in-memory TTL cache keyed by text.
// Repeated embeds of the same text within the TTL hit the cache.
type Cache struct {
	inner Embedder
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// WithCache wraps inner with a TTL cache. A ttl of 0 uses DefaultCacheTTL.
func WithCache(inner Embedder, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.Lock()
	if e, ok := c.entries[text]; ok && c.now().Before(e.expires) {
		vec := make([]float32, len(e.vec))
		copy(vec, e.vec)
		c.mu.Unlock()
		return vec, nil
	}
	c.mu.Unlock()

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	stored := make([]float32, len(vec))
	copy(stored, vec)
	c.entries[text] = cacheEntry{vec: stored, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return vec, nil
}

func (c *Cache) Dimension() int {
	return c.inner.Dimension()
}

// Invalidate drops the cached entry for text, if any.
func (c *Cache) Invalidate(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, text)
}

// InvalidateAll drops every cached entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
