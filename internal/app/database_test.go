//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/book-pricing-service/config"
	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/middleware"
	"github.com/guttosm/book-pricing-service/internal/mocks"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestDatabaseComponents_Close(t *testing.T) {
	var nilComponents *DatabaseComponents
	assert.NoError(t, nilComponents.Close(context.Background()))

	logs := new(mocks.MockLoggingService)
	components := &DatabaseComponents{
		LoggingService: logs,
		AuditLogger:    middleware.NewAsyncLogger(logs, middleware.DefaultAsyncLoggerConfig()),
	}

	assert.NoError(t, components.Close(context.Background()))
	assert.False(t, components.AuditLogger.Log(&model.LogEntry{Message: "after stop"}))
	logs.AssertExpectations(t)
}
