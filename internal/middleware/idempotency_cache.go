package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultIdempotencyCacheSize = 10000

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// idempotencyCache stores completed responses and tracks keys still being processed.
type idempotencyCache struct {
	responses *expirable.LRU[string, *cachedResponse]

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// newIdempotencyCache creates a new idempotency cache.
func newIdempotencyCache(size int, ttl time.Duration) *idempotencyCache {
	if size <= 0 {
		size = defaultIdempotencyCacheSize
	}
	return &idempotencyCache{
		responses: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
		inFlight:  make(map[string]struct{}),
	}
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	return c.responses.Get(key)
}

// Set stores a cached response.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.responses.Add(key, resp)
}

// Begin marks key as in progress. It returns false if another request holds it.
func (c *idempotencyCache) Begin(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

// Done releases key.
func (c *idempotencyCache) Done(key string) {
	c.mu.Lock()
	delete(c.inFlight, key)
	c.mu.Unlock()
}

// Len returns the number of cached responses.
func (c *idempotencyCache) Len() int {
	return c.responses.Len()
}
