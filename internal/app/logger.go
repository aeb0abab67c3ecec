// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/book-pricing-service/config"
	"github.com/guttosm/book-pricing-service/internal/logger"
)

// InitializeLogger initializes the global zerolog logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
