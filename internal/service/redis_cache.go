package service

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/metrics"
	"github.com/guttosm/book-pricing-service/internal/service/cache"
)

// DefaultRedisKeyPrefix namespaces quote keys in a shared Redis.
const DefaultRedisKeyPrefix = "bookpricing:quote:"

var redisJSON = jsoniter.ConfigFastest

// RedisCache shares computed quotes between service instances through Redis.
// Redis failures degrade to cache misses.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ cache.Cache = (*RedisCache)(nil)

// NewRedisCache creates a Redis backed cache. An empty prefix selects DefaultRedisKeyPrefix.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get fetches and decodes the quote stored under key.
func (c *RedisCache) Get(ctx context.Context, key string) (model.PriceQuote, bool) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("redis cache get failed")
			metrics.RecordCacheOperation("get", "error")
		} else {
			metrics.RecordCacheOperation("get", "miss")
		}
		return model.PriceQuote{}, false
	}

	var quote model.PriceQuote
	if err := redisJSON.Unmarshal(raw, &quote); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache entry corrupt")
		metrics.RecordCacheOperation("get", "error")
		return model.PriceQuote{}, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return quote, true
}

// Set encodes value and stores it with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value model.PriceQuote) {
	value.Lines = nil
	raw, err := redisJSON.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache encode failed")
		return
	}

	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate deletes key.
func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache delete failed")
		return
	}
	metrics.RecordCacheOperation("invalidate", "success")
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("redis cache scan failed")
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Int("keys", len(keys)).Msg("redis cache clear failed")
			return
		}
	}
	metrics.RecordCacheOperation("clear", "success")
}

// Stop is a no-op; the client is owned and closed by the caller.
func (c *RedisCache) Stop() {}
