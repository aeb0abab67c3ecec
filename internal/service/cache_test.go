//go:build !integration

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/service/cache"
)

func TestLRUCache_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		setupCache    func() *LRUCache
		key           string
		expectedValue model.PriceQuote
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *LRUCache {
				c := NewLRUCache(10, time.Minute)
				c.Set(ctx, "2,1", model.PriceQuote{Total: 23.2, FullPrice: 24})
				return c
			},
			key:           "2,1",
			expectedValue: model.PriceQuote{Total: 23.2, FullPrice: 24},
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *LRUCache {
				return NewLRUCache(10, time.Minute)
			},
			key:           "9",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *LRUCache {
				c := NewLRUCache(10, 50*time.Millisecond)
				c.Set(ctx, "1", model.PriceQuote{Total: 8})
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "1",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			value, found := c.Get(ctx, tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestLRUCache_SetDropsCartLines(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10, time.Minute)

	c.Set(ctx, "1", model.PriceQuote{
		Lines: []model.CartLine{{Book: model.NewBook("I"), Count: 1}},
		Total: 8,
	})

	got, found := c.Get(ctx, "1")
	assert.True(t, found)
	assert.Nil(t, got.Lines)
}

func TestLRUCache_Eviction(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2, time.Minute)

	c.Set(ctx, "1", model.PriceQuote{Total: 8})
	c.Set(ctx, "1,1", model.PriceQuote{Total: 15.2})
	_, _ = c.Get(ctx, "1")
	c.Set(ctx, "1,1,1", model.PriceQuote{Total: 21.6})

	_, found := c.Get(ctx, "1,1")
	assert.False(t, found, "least recently used entry should be evicted")

	_, found = c.Get(ctx, "1")
	assert.True(t, found)

	m := c.Metrics()
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 2, m.Capacity)
	assert.Equal(t, int64(1), m.Evictions)
}

func TestLRUCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10, time.Minute)
	c.Set(ctx, "3", model.PriceQuote{Total: 24})

	c.Invalidate(ctx, "3")
	c.Invalidate(ctx, "missing")

	_, found := c.Get(ctx, "3")
	assert.False(t, found)
}

func TestLRUCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10, time.Minute)
	c.Set(ctx, "1", model.PriceQuote{Total: 8})
	_, _ = c.Get(ctx, "1")
	_, _ = c.Get(ctx, "2")

	c.Clear(ctx)

	assert.Equal(t, cache.Metrics{Capacity: 10}, c.Metrics())
}

func TestLRUCache_Stop(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10, time.Minute)
	c.Set(ctx, "1", model.PriceQuote{Total: 8})

	c.Stop()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestLRUCache_Metrics(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(10, time.Minute)
	c.Set(ctx, "1", model.PriceQuote{Total: 8})

	_, _ = c.Get(ctx, "1")
	_, _ = c.Get(ctx, "1")
	_, _ = c.Get(ctx, "2")

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.InDelta(t, 2.0/3.0, m.HitRatio(), 1e-9)
}

func TestLRUCache_Concurrency(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("%d", n%10)
			c.Set(ctx, key, model.PriceQuote{Total: float64(n)})
			_, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Metrics().Size)
}
