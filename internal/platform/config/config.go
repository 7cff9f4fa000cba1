// Package config loads the server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all externally configured values. Database credentials, the
// Redis address and the upload root come from the environment; defaults suit
// local development only.
type Config struct {
	Addr string // listen address, e.g. ":3000"

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	UploadRoot string        // directory holding per-user image directories
	SessionTTL time.Duration // server-side session lifetime
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using environment as-is")
	}

	return &Config{
		Addr:          getEnv("ADDR", ":3000"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "postgres"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		UploadRoot:    getEnv("UPLOAD_ROOT", "public/uploads"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
	}
}

// getEnv returns the env var value or the fallback when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the env var parsed as int, or the fallback when unset or
// unparsable.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", value)
		return fallback
	}
	return n
}
