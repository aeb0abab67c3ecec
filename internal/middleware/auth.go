package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"

	// SubjectKey is the context key for the authenticated caller.
	SubjectKey ContextKey = "subject"
)

type apiKey struct {
	value   []byte
	hashed  bool
	subject string
}

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// Keys that look like bcrypt hashes are compared with bcrypt, others in constant time.
// If keys is empty, authentication is disabled.
func APIKeyAuth(keys []string) gin.HandlerFunc {
	configured := make([]apiKey, 0, len(keys))
	for i, k := range keys {
		configured = append(configured, apiKey{
			value:   []byte(k),
			hashed:  isBcryptHash(k),
			subject: "api-key-" + strconv.Itoa(i+1),
		})
	}

	return func(c *gin.Context) {
		if len(configured) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		subject, ok := matchAPIKey(configured, []byte(key))
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(SubjectKey), subject)
		c.Next()
	}
}

func matchAPIKey(keys []apiKey, candidate []byte) (string, bool) {
	for _, k := range keys {
		if k.hashed {
			if bcrypt.CompareHashAndPassword(k.value, candidate) == nil {
				return k.subject, true
			}
			continue
		}
		if subtle.ConstantTimeCompare(k.value, candidate) == 1 {
			return k.subject, true
		}
	}
	return "", false
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// GetSubject returns the authenticated caller, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	if v, exists := c.Get(string(SubjectKey)); exists {
		if subject, ok := v.(string); ok {
			return subject
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
