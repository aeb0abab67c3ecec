package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, int64(100), cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, AuthModeAPIKey, cfg.Auth.Mode)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "book_pricing", cfg.Database.DatabaseName)
		assert.False(t, cfg.Tracing.Enabled)
		assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CACHE_BACKEND", "Redis")
		t.Setenv("CACHE_SIZE", "500")
		t.Setenv("CACHE_TTL", "10m")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", "key1, key2,,")
		t.Setenv("MONGODB_ENABLED", "true")
		t.Setenv("CIRCUIT_BREAKER_TIMEOUT", "5s")
		t.Setenv("TRACING_SAMPLE_RATIO", "0.25")
		t.Setenv("LOG_PRETTY", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, int64(50), cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, 5*time.Second, cfg.Database.CircuitBreakerTimeout)
		assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("RATE_LIMIT", "lots")
		t.Setenv("CACHE_TTL", "forever")
		t.Setenv("AUTH_ENABLED", "maybe")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, int64(100), cfg.Server.RateLimit)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.False(t, cfg.Auth.Enabled)
	})

	t.Run("rejects inconsistent settings", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("AUTH_MODE", "jwt")
		t.Setenv("JWT_SECRET_KEY", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_URL")
		assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Cache:   CacheConfig{Backend: CacheBackendMemory},
			Auth:    AuthConfig{Mode: AuthModeAPIKey},
			Tracing: TracingConfig{SampleRatio: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "cache disabled", mutate: func(c *Config) { c.Cache.Backend = CacheBackendNone }},
		{name: "unknown cache backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: "CACHE_BACKEND"},
		{
			name: "api key auth without keys",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
			},
			wantErr: "API_KEYS",
		},
		{
			name: "jwt auth with long secret",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
				c.Auth.Mode = AuthModeJWT
				c.Auth.JWTSecretKey = "0123456789abcdef0123456789abcdef"
			},
		},
		{
			name: "unknown auth mode",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
				c.Auth.Mode = "oauth"
			},
			wantErr: "AUTH_MODE",
		},
		{name: "negative rate limit", mutate: func(c *Config) { c.Server.RateLimit = -1 }, wantErr: "RATE_LIMIT"},
		{name: "sample ratio out of range", mutate: func(c *Config) { c.Tracing.SampleRatio = 2 }, wantErr: "TRACING_SAMPLE_RATIO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_HTTPAddr(t *testing.T) {
	tests := []struct {
		port     string
		expected string
	}{
		{port: "8080", expected: ":8080"},
		{port: ":9090", expected: ":9090"},
		{port: " ", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			cfg := Config{Server: ServerConfig{Port: tt.port}}
			assert.Equal(t, tt.expected, cfg.HTTPAddr())
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Len(t, parseCORSOrigins(""), 2)
	assert.Equal(t, "https://shop.example.com", parseCORSOrigins(" https://shop.example.com ")[2])
}
