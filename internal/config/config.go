package config

import (
	"os"
	"strconv"

	"medrisk/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Ops      OpsConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// OpsConfig holds the operational endpoint settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// DatabaseConfig holds the optional assessment store settings. An empty URL
// disables persistence; assessments are still computed and returned.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
}

// DataConfig holds training data settings. An empty DatasetDir switches the
// engine to the built-in synthetic cohorts.
type DataConfig struct {
	DatasetDir string
	CohortSize int
	Seed       int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "9090"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
		},
		Data: DataConfig{
			DatasetDir: os.Getenv("DATASET_DIR"),
			CohortSize: getEnvIntOrDefault("COHORT_SIZE", 400),
			Seed:       int64(getEnvIntOrDefault("COHORT_SEED", 42)),
		},
	}

	if cfg.Server.Port == cfg.Ops.Port {
		return nil, errors.ConfigInvalid("PORT and OPS_PORT must differ")
	}
	if cfg.Data.CohortSize < 10 {
		return nil, errors.ConfigInvalid("COHORT_SIZE must be at least 10")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
