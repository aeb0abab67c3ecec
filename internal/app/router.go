// Package app provides router configuration.
package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-pricing-service/config"
	"github.com/guttosm/book-pricing-service/internal/http"
	"github.com/guttosm/book-pricing-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents and redisClient may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	redisClient *redis.Client,
	cfg config.Config,
) (*RouterComponents, error) {
	var handlerOpts []http.HandlerOption
	healthHandler := http.NewHealthHandler()

	routerCfg := http.RouterConfig{
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		EnableIdempotency: true,
		IdempotencyTTL:    cfg.Server.IdempotencyTTL,
		RequestTimeout:    cfg.Server.RequestTimeout,
	}

	if dbComponents != nil {
		handlerOpts = append(handlerOpts, http.WithAuditLogger(dbComponents.AuditLogger))
		routerCfg.AuditLogger = dbComponents.AuditLogger
		routerCfg.LoggingService = dbComponents.LoggingService

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	if redisClient != nil {
		healthHandler.RegisterChecker("redis", http.HealthCheckerFunc(redisChecker(redisClient)))
	}

	if cfg.Auth.Enabled {
		switch {
		case cfg.Auth.Mode == config.AuthModeJWT && services.Tokens != nil:
			routerCfg.TokenValidator = services.Tokens
		default:
			routerCfg.APIKeys = cfg.Auth.APIKeys
		}
	}

	if cfg.Server.RateLimit > 0 {
		limiter, err := newRateLimiter(redisClient, cfg)
		if err != nil {
			return nil, err
		}
		routerCfg.RateLimiter = limiter
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Calculator, handlerOpts...),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}, nil
}

// newRateLimiter shares counters through Redis when it is connected,
// namespaced by the configured key prefix.
func newRateLimiter(redisClient *redis.Client, cfg config.Config) (*middleware.RateLimiter, error) {
	server := cfg.Server
	if redisClient == nil {
		return middleware.NewMemoryRateLimiter(server.RateLimit, server.RateWindow), nil
	}

	limiter, err := middleware.NewRedisRateLimiter(redisClient, cfg.Redis.KeyPrefix+"ratelimit", server.RateLimit, server.RateWindow)
	if err != nil {
		return nil, fmt.Errorf("create redis rate limiter: %w", err)
	}
	log.Info().Int64("rate", server.RateLimit).Dur("window", server.RateWindow).Msg("Rate limit counters shared through Redis")
	return limiter, nil
}
