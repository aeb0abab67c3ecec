// Package app provides service initialization.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-pricing-service/config"
	"github.com/guttosm/book-pricing-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.PriceCalculator
	// Tokens is set when bearer token authentication is configured.
	Tokens *service.TokenServiceImpl
}

// InitializeServices initializes business logic services.
// redisClient may be nil; the redis cache backend then falls back to memory.
func InitializeServices(cfg config.Config, redisClient *redis.Client) *ServiceComponents {
	var opts []service.Option

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		if redisClient != nil {
			opts = append(opts, service.WithCacheInterface(
				service.NewRedisCache(redisClient, cfg.Redis.KeyPrefix+"quote:", cfg.Cache.TTL),
			))
			break
		}
		log.Warn().Msg("Redis cache backend selected without a Redis connection - using in-memory cache")
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	case config.CacheBackendNone:
	default:
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	components := &ServiceComponents{
		Calculator: service.NewPriceCalculatorService(opts...),
	}

	if cfg.Auth.Enabled && cfg.Auth.Mode == config.AuthModeJWT {
		components.Tokens = service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth))
	}

	return components
}
