// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"trainbook/internal/calendar"
)

// Config holds all runtime configuration values
type Config struct {
	// Port is the HTTP port to listen on
	Port string

	// RedisAddr is the Redis host:port
	RedisAddr string

	// RedisPassword is the Redis password, empty when unset
	RedisPassword string

	// RedisDB is the Redis logical database number
	RedisDB int

	// GridStartHour is the first hour row of the scheduling grid
	GridStartHour int

	// GridHourCount is the number of hour rows on the grid
	GridHourCount int
}

// Load reads configuration from the environment. Every value has a default
// suitable for local development; a .env file is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		GridStartHour: getEnvInt("GRID_START_HOUR", calendar.DefaultStartHour),
		GridHourCount: getEnvInt("GRID_HOUR_COUNT", calendar.DefaultHourCount),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
