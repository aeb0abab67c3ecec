// Package cache declares the storage contract for computed price quotes.
package cache

import (
	"context"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
)

// Cache stores price quotes keyed by cart signature.
type Cache interface {
	Get(ctx context.Context, key string) (model.PriceQuote, bool)
	Set(ctx context.Context, key string, value model.PriceQuote)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over lookups, or 0 before the first lookup.
func (m Metrics) HitRatio() float64 {
	lookups := m.Hits + m.Misses
	if lookups == 0 {
		return 0
	}
	return float64(m.Hits) / float64(lookups)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
