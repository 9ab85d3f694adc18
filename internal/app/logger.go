package app

import (
	"github.com/guttosm/deal-service/config"
	"github.com/guttosm/deal-service/internal/logger"
)

// InitializeLogger initializes the global logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
