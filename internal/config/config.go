package config

import (
	"os"
	"strconv"

	"sszqubits/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathConfig
	Sweep SweepConfig
	Log   LogConfig
}

// PathConfig holds file system paths for generated artifacts
type PathConfig struct {
	ReportDir string
}

// SweepConfig holds parameter-sweep execution settings
type SweepConfig struct {
	Workers int64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: PathConfig{
			ReportDir: getEnvOrDefault("REPORT_DIR", "./reports"),
		},
		Sweep: SweepConfig{
			Workers: int64(getEnvIntOrDefault("SWEEP_WORKERS", 4)),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Paths.ReportDir == "" {
		return errors.ConfigInvalid("report directory is required")
	}
	if config.Sweep.Workers < 1 {
		return errors.ConfigInvalid("sweep workers must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
