package config

import (
	"os"
	"strconv"

	"safetycalc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Export ExportConfig
	Batch  BatchConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
	UIPort  string
}

// ExportConfig holds report and workbook output settings
type ExportConfig struct {
	OutputDir  string
	ExcelFile  string
	ReportFile string
}

// BatchConfig holds batch runner settings
type BatchConfig struct {
	ScenarioFile string
	Workers      int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
			UIPort:  getEnvOrDefault("UI_PORT", "8081"),
		},
		Export: ExportConfig{
			OutputDir:  getEnvOrDefault("OUTPUT_DIR", "./out"),
			ExcelFile:  getEnvOrDefault("EXCEL_FILE", "assessments.xlsx"),
			ReportFile: getEnvOrDefault("REPORT_FILE", "assessments.md"),
		},
		Batch: BatchConfig{
			ScenarioFile: getEnvOrDefault("SCENARIO_FILE", "scenarios.json"),
			Workers:      getEnvIntOrDefault("BATCH_WORKERS", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Export.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Batch.Workers < 1 {
		return errors.ConfigInvalid("batch workers must be at least 1")
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
