package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/logger"
)

const memoryRateLimitPrefix = "ratelimit"

// RateLimiter limits requests per caller with a fixed window.
type RateLimiter struct {
	limiter *limiter.Limiter
}

// NewRateLimiter creates a rate limiter on the given store.
func NewRateLimiter(store limiter.Store, rate int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: limiter.New(store, limiter.Rate{Period: window, Limit: rate}),
	}
}

// NewMemoryRateLimiter creates a rate limiter that keeps counters in process.
func NewMemoryRateLimiter(rate int64, window time.Duration) *RateLimiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          memoryRateLimitPrefix,
		CleanUpInterval: time.Minute,
	})
	return NewRateLimiter(store, rate, window)
}

// NewRedisRateLimiter creates a rate limiter whose counters are shared through Redis
// under keys starting with prefix.
func NewRedisRateLimiter(client *redis.Client, prefix string, rate int64, window time.Duration) (*RateLimiter, error) {
	store, err := limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		return nil, err
	}
	return NewRateLimiter(store, rate, window), nil
}

// RateLimit returns a middleware that limits requests per authenticated subject,
// falling back to the client IP. Store failures let the request through.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)

		lctx, err := rl.limiter.Get(c.Request.Context(), key)
		if err != nil {
			log := logger.Logger()
			log.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("Rate limiter store unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			retryAfter := lctx.Reset - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeRateLimit, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if subject := GetSubject(c); subject != "" {
		return "subject:" + subject
	}
	return "ip:" + c.ClientIP()
}
