// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the CLI.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Config holds application configuration
type Config struct {
	LogLevel        string
	LogPretty       bool
	Parallel        bool    // evaluate rule modules on the worker pool
	Workers         int     // worker pool size when Parallel is set
	MinDashaPeriods int     // mahadashas to generate, at least chart.MinDashaPeriods
	StrengthScale   float64 // factor applied to supplied shadbala rupas
	OutputFormat    string  // json or msgpack
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("LOG_PRETTY", true),
		Parallel:        getEnvAsBool("KUNDALI_PARALLEL", true),
		Workers:         getEnvAsInt("KUNDALI_WORKERS", 4),
		MinDashaPeriods: getEnvAsInt("KUNDALI_MIN_DASHA_PERIODS", 9),
		StrengthScale:   getEnvAsFloat("KUNDALI_STRENGTH_SCALE", 2.0),
		OutputFormat:    strings.ToLower(getEnv("KUNDALI_OUTPUT_FORMAT", FormatJSON)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the pipeline cannot run with
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("KUNDALI_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.MinDashaPeriods < 1 {
		return fmt.Errorf("KUNDALI_MIN_DASHA_PERIODS must be at least 1, got %d", c.MinDashaPeriods)
	}
	if c.StrengthScale <= 0 {
		return fmt.Errorf("KUNDALI_STRENGTH_SCALE must be positive, got %v", c.StrengthScale)
	}
	switch c.OutputFormat {
	case FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("unsupported KUNDALI_OUTPUT_FORMAT: %q", c.OutputFormat)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
