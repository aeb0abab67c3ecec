// Package config loads the book pricing service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Auth modes.
const (
	AuthModeAPIKey = "api_key"
	AuthModeJWT    = "jwt"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Tracing  TracingConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int64
	RateWindow      time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	IdempotencyTTL  time.Duration
}

// CacheConfig holds quote cache configuration.
type CacheConfig struct {
	Backend string
	Size    int
	TTL     time.Duration
}

// RedisConfig holds the Redis connection shared by the quote cache and the rate limiter.
type RedisConfig struct {
	URL       string
	KeyPrefix string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled      bool
	Mode         string
	APIKeys      []string
	JWTSecretKey string
	JWTIssuer    string
	TokenTTL     time.Duration
}

// DatabaseConfig holds MongoDB configuration for the audit log.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// TracingConfig holds OpenTelemetry configuration.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := fromKoanf(k)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromKoanf(k *koanf.Koanf) Config {
	return Config{
		Server: ServerConfig{
			Port:            getString(k, "PORT", "8080"),
			RateLimit:       int64(getInt(k, "RATE_LIMIT", 100)),
			RateWindow:      getDuration(k, "RATE_WINDOW", time.Minute),
			CORSOrigins:     parseCORSOrigins(k.String("CORS_ORIGINS")),
			SwaggerUser:     k.String("SWAGGER_USER"),
			SwaggerPass:     k.String("SWAGGER_PASS"),
			RequestTimeout:  getDuration(k, "REQUEST_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDuration(k, "SHUTDOWN_TIMEOUT", 30*time.Second),
			IdempotencyTTL:  getDuration(k, "IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(getString(k, "CACHE_BACKEND", CacheBackendMemory)),
			Size:    getInt(k, "CACHE_SIZE", 1000),
			TTL:     getDuration(k, "CACHE_TTL", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:       k.String("REDIS_URL"),
			KeyPrefix: getString(k, "REDIS_KEY_PREFIX", "bookpricing:"),
		},
		Auth: AuthConfig{
			Enabled:      getBool(k, "AUTH_ENABLED", false),
			Mode:         strings.ToLower(getString(k, "AUTH_MODE", AuthModeAPIKey)),
			APIKeys:      splitAndTrim(k.String("API_KEYS")),
			JWTSecretKey: k.String("JWT_SECRET_KEY"),
			JWTIssuer:    getString(k, "JWT_ISSUER", "book-pricing-service"),
			TokenTTL:     getDuration(k, "JWT_TOKEN_TTL", time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getString(k, "MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getString(k, "MONGODB_DATABASE", "book_pricing"),
			LogsTTL:                        getDuration(k, "MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getBool(k, "MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getInt(k, "CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getInt(k, "CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getDuration(k, "CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Tracing: TracingConfig{
			Enabled:     getBool(k, "TRACING_ENABLED", false),
			Endpoint:    k.String("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: getString(k, "OTEL_SERVICE_NAME", "book-pricing-service"),
			SampleRatio: getFloat(k, "TRACING_SAMPLE_RATIO", 1.0),
		},
		Log: LogConfig{
			Level:  getString(k, "LOG_LEVEL", "info"),
			Pretty: getBool(k, "LOG_PRETTY", false),
		},
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error

	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendNone:
	case CacheBackendRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("REDIS_URL is required when CACHE_BACKEND=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CACHE_BACKEND %q", c.Cache.Backend))
	}

	if c.Auth.Enabled {
		switch c.Auth.Mode {
		case AuthModeAPIKey:
			if len(c.Auth.APIKeys) == 0 {
				errs = append(errs, errors.New("API_KEYS is required when AUTH_MODE=api_key"))
			}
		case AuthModeJWT:
			if len(c.Auth.JWTSecretKey) < 32 {
				errs = append(errs, errors.New("JWT_SECRET_KEY must be at least 32 characters when AUTH_MODE=jwt"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode))
		}
	}

	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT must not be negative"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("TRACING_SAMPLE_RATIO must be between 0 and 1"))
	}

	return errors.Join(errs...)
}

// HTTPAddr returns the address the HTTP server binds to.
func (c Config) HTTPAddr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Server.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func getString(k *koanf.Koanf, key, defaultValue string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return defaultValue
}

func getInt(k *koanf.Koanf, key string, defaultValue int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(k.String(key))); err == nil {
		return v
	}
	return defaultValue
}

func getFloat(k *koanf.Koanf, key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(k.String(key)), 64); err == nil {
		return v
	}
	return defaultValue
}

func getBool(k *koanf.Koanf, key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(strings.TrimSpace(k.String(key))); err == nil {
		return v
	}
	return defaultValue
}

func getDuration(k *koanf.Koanf, key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(strings.TrimSpace(k.String(key))); err == nil {
		return v
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, splitAndTrim(s)...)
}
