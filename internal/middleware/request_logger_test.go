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

	"github.com/guttosm/book-pricing-service/internal/domain/model"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		path          string
		status        int
		expectStored  bool
		expectedLevel string
	}{
		{name: "stores successful request", path: "/api/discounts", status: http.StatusOK, expectStored: true, expectedLevel: "info"},
		{name: "stores client error", path: "/api/discounts", status: http.StatusBadRequest, expectStored: true, expectedLevel: "warn"},
		{name: "stores server error", path: "/api/discounts", status: http.StatusInternalServerError, expectStored: true, expectedLevel: "error"},
		{name: "skips probe path", path: "/healthz", status: http.StatusOK, expectStored: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &recordingLoggingService{}
			al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 10, FlushInterval: time.Hour})

			router := gin.New()
			router.Use(RequestID(), RequestLogger(al, "/healthz"))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("User-Agent", "test-agent")
			router.ServeHTTP(httptest.NewRecorder(), req)
			al.Stop()

			if !tt.expectStored {
				assert.Empty(t, svc.entries)
				return
			}
			require.Len(t, svc.entries, 1)
			entry := svc.entries[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.status, entry.StatusCode)
			assert.Equal(t, tt.path, entry.Path)
			assert.Equal(t, "test-agent", entry.UserAgent)
			assert.Equal(t, model.ActionHTTPRequest, entry.ActionType)
		})
	}
}

func TestRequestLogger_WithoutAsyncLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(http.StatusOK))
	assert.Equal(t, "info", getLogLevel(http.StatusFound))
	assert.Equal(t, "warn", getLogLevel(http.StatusNotFound))
	assert.Equal(t, "error", getLogLevel(http.StatusServiceUnavailable))
}
