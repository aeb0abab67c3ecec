//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/book-pricing-service/internal/service"
)

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := service.NewTokenService(service.TokenConfig{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "book-pricing-service",
		TTL:       time.Hour,
	})
	valid, _, err := tokens.Issue("storefront", "quote")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + valid,
			expectedStatus: http.StatusOK,
			expectedBody:   "storefront",
		},
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication token is required",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "empty bearer",
			authHeader:     "Bearer   ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication token is required",
		},
		{
			name:           "tampered token",
			authHeader:     "Bearer " + valid + "x",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), JWTAuth(tokens))
			router.GET("/test", func(c *gin.Context) {
				claims, ok := c.Get(string(ClaimsKey))
				require.True(t, ok)
				assert.Equal(t, "quote", claims.(*service.TokenClaims).Scope)
				c.String(http.StatusOK, GetSubject(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
