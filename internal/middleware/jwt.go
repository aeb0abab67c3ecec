package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/service"
)

// ClaimsKey is the context key for validated token claims.
const ClaimsKey ContextKey = "token_claims"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	Validate(tokenString string) (*service.TokenClaims, error)
}

// JWTAuth returns a middleware that validates bearer tokens and records their subject.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(SubjectKey), claims.Subject)
		c.Set(string(ClaimsKey), claims)
		c.Next()
	}
}
