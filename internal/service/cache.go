package service

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/metrics"
	"github.com/guttosm/book-pricing-service/internal/service/cache"
)

// LRUCache is an in-process quote cache with LRU eviction and TTL expiration.
// It implements cache.CacheWithMetrics.
type LRUCache struct {
	lru       *expirable.LRU[string, model.PriceQuote]
	capacity  int
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

var _ cache.CacheWithMetrics = (*LRUCache)(nil)

// NewLRUCache creates a cache holding at most capacity quotes, each for ttl.
// A non-positive ttl keeps entries until they are evicted.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	c := &LRUCache{capacity: capacity}
	c.lru = expirable.NewLRU[string, model.PriceQuote](capacity, func(string, model.PriceQuote) {
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "success")
	}, ttl)
	metrics.UpdateCacheMetrics(0, capacity)
	return c
}

// Get returns a copy of the cached quote for key.
func (c *LRUCache) Get(_ context.Context, key string) (model.PriceQuote, bool) {
	quote, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.PriceQuote{}, false
	}

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	quote.Groups = slices.Clone(quote.Groups)
	return quote, true
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRUCache) Set(_ context.Context, key string, value model.PriceQuote) {
	value.Lines = nil
	value.Groups = slices.Clone(value.Groups)
	c.lru.Add(key, value)
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheMetrics(c.lru.Len(), c.capacity)
}

// Invalidate removes a specific key from the cache.
func (c *LRUCache) Invalidate(_ context.Context, key string) {
	if c.lru.Remove(key) {
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *LRUCache) Clear(_ context.Context) {
	c.lru.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop drops all entries.
func (c *LRUCache) Stop() {
	c.lru.Purge()
}

// Metrics returns current cache performance metrics.
func (c *LRUCache) Metrics() cache.Metrics {
	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.lru.Len(),
		Capacity:  c.capacity,
	}
}
