// Package config provides configuration management functionality.
//
// This package handles loading configuration from environment variables
// (.env file), with built-in defaults for every field.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port                 int     // HTTP server port
	DevMode              bool    // Development mode flag (verbose logging, pretty console output)
	LogLevel             string  // Log level (debug, info, warn, error)
	DefaultRiskFreeRate  float64 // Flat risk-free rate setting; not read by the pricing core, which always uses a zero rate
	DayCountDenominator  float64 // Year-fraction denominator setting; not read by the pricing core, which always divides by 365
	DefaultEquityBumpPct float64 // Greek bump-size setting; not read by the pricing core, whose finite-difference greeks always bump by 1%
	RepricerWorkers      int     // Number of goroutines the batch repricer fans positions out across
	RevaluationCron      string  // Cron schedule for the scheduled portfolio revaluation job
}

// Load reads configuration from environment variables, falling back to
// a .env file if present and then to built-in defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvAsInt("PRICER_PORT", 8080),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DefaultRiskFreeRate:  getEnvAsFloat("DEFAULT_RISK_FREE_RATE", 0.0),
		DayCountDenominator:  getEnvAsFloat("DAY_COUNT_DENOMINATOR", 365.0),
		DefaultEquityBumpPct: getEnvAsFloat("DEFAULT_EQUITY_BUMP_PCT", 0.01),
		RepricerWorkers:      getEnvAsInt("REPRICER_WORKERS", 10),
		RevaluationCron:      getEnv("REVALUATION_CRON", "0 0 * * *"),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean with a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float64 with a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
