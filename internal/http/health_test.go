//go:build !integration

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/book-pricing-service/internal/circuitbreaker"
)

type healthBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func serveHealth(t *testing.T, h *HealthHandler, path string) (int, healthBody) {
	t.Helper()

	router := gin.New()
	h.Register(router)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error {
		return errors.New("down")
	}))

	code, body := serveHealth(t, h, "/healthz")

	assert.Equal(t, http.StatusOK, code, "liveness ignores dependencies")
	assert.Equal(t, "ok", body.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(h *HealthHandler)
		expectedStatus int
		expectedBody   string
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no dependencies",
			setup:          func(*HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy dependencies",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
				h.RegisterChecker("redis", HealthCheckerFunc(func(context.Context) error { return nil }))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedChecks: map[string]interface{}{"mongodb": "ok", "redis": "ok"},
		},
		{
			name: "failing dependency",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
				h.RegisterChecker("redis", HealthCheckerFunc(func(context.Context) error {
					return errors.New("connection refused")
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "degraded",
			expectedChecks: map[string]interface{}{"mongodb": "ok", "redis": "connection refused"},
		},
		{
			name: "closed circuit",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedChecks: map[string]interface{}{"mongodb_circuit": "closed"},
		},
		{
			name: "open circuit",
			setup: func(h *HealthHandler) {
				cb := circuitbreaker.New(circuitbreaker.Config{
					FailureThreshold: 1,
					SuccessThreshold: 1,
					Timeout:          time.Hour,
					Name:             "health-test",
				})
				_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
				h.RegisterCircuitBreaker("mongodb", cb)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "degraded",
			expectedChecks: map[string]interface{}{"mongodb_circuit": "open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)

			code, body := serveHealth(t, h, "/readyz")

			assert.Equal(t, tt.expectedStatus, code)
			assert.Equal(t, tt.expectedBody, body.Status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
		})
	}
}

func TestHealthHandler_ReadinessPassesDeadline(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("slow", HealthCheckerFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	}))

	code, _ := serveHealth(t, h, "/readyz")

	assert.Equal(t, http.StatusOK, code)
}
