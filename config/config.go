package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config is the process environment
type Config struct {
	Environment string
	LogLevel    slog.Level
	// LogFile receives the log, empty discards it since the terminal owns stdout
	LogFile string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("VILLAGE_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("VILLAGE_LOG_LEVEL", "info")),
		LogFile:     getEnv("VILLAGE_LOG_FILE", ""),
	}
}

// IsProduction selects structured JSON logs
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
