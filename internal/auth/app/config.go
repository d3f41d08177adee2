package app

import (
	"os"
	"strconv"
	"time"

	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/jwtx"
)

type Config struct {
	TokenSecret string        // Required: HS256 signing secret; empty is startup-fatal
	TokenTTL    time.Duration // Optional: bearer token lifetime (default: 24h)

	BcryptCost      int // Optional: password hashing work factor (default: 10)
	HashConcurrency int // Optional: max concurrent hash/verify operations (default: 8)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./auth.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		TokenSecret:         os.Getenv("AUTH_TOKEN_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultTokenTTL),
		BcryptCost:          getEnvIntOrDefault("AUTH_BCRYPT_COST", cryptox.DefaultCost),
		HashConcurrency:     getEnvIntOrDefault("AUTH_HASH_CONCURRENCY", cryptox.DefaultMaxConcurrent),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
