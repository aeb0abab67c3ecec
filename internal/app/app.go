// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/guttosm/book-pricing-service/config"
	"github.com/guttosm/book-pricing-service/internal/http"
	"github.com/guttosm/book-pricing-service/internal/obs"
)

// App is the wired application.
type App struct {
	Router *gin.Engine
	Server *Server
}

// InitializeApp creates and wires all application dependencies.
// Resources opened along the way are released by the server's shutdown hooks,
// or immediately when initialization fails.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	shutdownTracer, err := obs.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	redisClient, err := InitializeRedis(ctx, cfg.Redis)
	if err != nil {
		_ = shutdownTracer(ctx)
		return nil, err
	}

	serviceComponents := InitializeServices(cfg, redisClient)
	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents, err := InitializeRouter(serviceComponents, dbComponents, redisClient, cfg)
	if err != nil {
		_ = dbComponents.Close(ctx)
		closeRedis(redisClient)
		_ = shutdownTracer(ctx)
		return nil, err
	}

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	var handler nethttp.Handler = router
	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(router, cfg.Tracing.ServiceName)
	}

	server := NewServer(handler, cfg.HTTPAddr(), cfg.Server.ShutdownTimeout)
	server.OnShutdown("audit log", dbComponents.Close)
	if redisClient != nil {
		server.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })
	}
	server.OnShutdown("tracer", shutdownTracer)

	return &App{Router: router, Server: server}, nil
}

// Run serves requests until a shutdown signal arrives.
func (a *App) Run() error {
	return a.Server.Run()
}

func closeRedis(client *redis.Client) {
	if client != nil {
		_ = client.Close()
	}
}
