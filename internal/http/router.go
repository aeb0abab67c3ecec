package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/book-pricing-service/internal/metrics"
	"github.com/guttosm/book-pricing-service/internal/middleware"
	"github.com/guttosm/book-pricing-service/internal/service"
)

// probePaths are served without compression and kept out of the access log store.
var probePaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string

	// RateLimiter limits /api requests when set.
	RateLimiter *middleware.RateLimiter
	// APIKeys enables API key authentication on /api when not empty.
	APIKeys []string
	// TokenValidator enables bearer token authentication on /api and takes
	// precedence over APIKeys.
	TokenValidator middleware.TokenValidator

	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	RequestTimeout    time.Duration

	// AuditLogger stores access and audit entries when set.
	AuditLogger *middleware.AsyncLogger
	// LoggingService serves GET /api/audit-logs when set.
	LoggingService service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.IdempotencyKeyTTL,
		RequestTimeout:    middleware.DefaultTimeoutConfig().Timeout,
	}
}

// NewRouter creates and configures the Gin router for the book pricing service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{NewPricingRoutes(handler)}
	if cfg.LoggingService != nil {
		groups = append(groups, NewAuditRoutes(NewAuditHandler(cfg.LoggingService)))
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Authorization", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(probePaths...),
		middleware.RequestLogger(cfg.AuditLogger, probePaths...),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
// Authentication runs first so rate limits and idempotency keys are per caller.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	switch {
	case cfg.TokenValidator != nil:
		api.Use(middleware.JWTAuth(cfg.TokenValidator))
	case len(cfg.APIKeys) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}

	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idempotency := middleware.DefaultIdempotencyConfig()
		if cfg.IdempotencyTTL > 0 {
			idempotency = middleware.NewIdempotencyConfig(0, cfg.IdempotencyTTL)
		}
		api.Use(middleware.Idempotency(idempotency))
	}
}
