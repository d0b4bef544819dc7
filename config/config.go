package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tradingJournal/internal/adapters/logger"
	"tradingJournal/internal/analytics"
	"tradingJournal/internal/ports"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DBPath string

	// Logging
	LogLevel  logger.LogLevel
	LogFormat logger.Format

	// Dashboard
	ChartPeriod    analytics.Period // Default window for the performance chart
	SeedSampleData bool             // Insert demo trades into an empty journal

	// CSV export/import
	ExportDir string
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []string // Collect validation errors

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/journal.db")
	if strings.TrimSpace(cfg.DBPath) == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))
	cfg.LogFormat = logger.ParseFormat(getEnv("LOG_FORMAT", "text"))

	// Dashboard
	period, err := analytics.ParsePeriod(getEnv("CHART_PERIOD", string(analytics.Period1M)))
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CHART_PERIOD: %v", err))
	}
	cfg.ChartPeriod = period

	cfg.SeedSampleData, err = getEnvAsBoolRequired("SEED_SAMPLE_DATA", false)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid SEED_SAMPLE_DATA: %v", err))
	}

	// Export
	cfg.ExportDir = getEnv("EXPORT_DIR", "./data/exports")

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ports.ErrConfigurationError, strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBoolRequired(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
