//go:build !integration

package app

import (
	"time"

	"github.com/guttosm/book-pricing-service/config"
)

const testJWTSecret = "app-test-secret-that-is-long-enough"

// testConfig mirrors the defaults of config.Load with every backing service disabled.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:            "0",
			RateLimit:       100,
			RateWindow:      time.Minute,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			IdempotencyTTL:  time.Hour,
		},
		Cache: config.CacheConfig{
			Backend: config.CacheBackendMemory,
			Size:    100,
			TTL:     time.Minute,
		},
		Redis: config.RedisConfig{
			KeyPrefix: "bookpricing:",
		},
		Auth: config.AuthConfig{
			Mode:      config.AuthModeAPIKey,
			JWTIssuer: "book-pricing-service",
			TokenTTL:  time.Hour,
		},
		Tracing: config.TracingConfig{
			ServiceName: "book-pricing-service",
			SampleRatio: 1,
		},
		Log: config.LogConfig{
			Level: "error",
		},
	}
}
