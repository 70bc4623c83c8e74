// Package cli provides common initialization for the finance-monitor command.
package cli

import (
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/voldemort-x/Finance-Monitor/internal/log"
)

// SetupLogger initializes structured logging and installs it as the default.
func SetupLogger() *log.Logger {
	logger := log.New(slog.LevelInfo)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}
