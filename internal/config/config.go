package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Data    DataConfig
	Storage StorageConfig
	Redis   RedisConfig
}

// DataConfig points at the catalog files
type DataConfig struct {
	Dir string
}

// StorageConfig selects where finished sheets are kept
type StorageConfig struct {
	// Backend is "file", "redis" or "memory"
	Backend string

	// OutputDir is the sheet directory for the file backend
	OutputDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Dir: getEnvOrDefault("DATA_DIR", "data"),
		},
		Storage: StorageConfig{
			Backend:   getEnvOrDefault("STORAGE_BACKEND", "file"),
			OutputDir: getEnvOrDefault("OUTPUT_DIR", "characters"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
