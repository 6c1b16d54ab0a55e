package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIGatewayURL    string
	HTTPTimeout      time.Duration
	StatusClearDelay time.Duration
	PreviewEnabled   bool
	RedisURL         string
	HistoryTTL       time.Duration
	HistoryLimit     int64
	Env              string
}

func LoadConfig() Config {
	return Config{
		APIGatewayURL:    getEnv("API_GATEWAY_URL", ""),
		HTTPTimeout:      getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		StatusClearDelay: getEnvAsDuration("STATUS_CLEAR_DELAY", 3*time.Second),
		PreviewEnabled:   getEnvAsBool("PREVIEW_ENABLED", true),
		RedisURL:         getEnv("REDIS_URL", ""),
		HistoryTTL:       getEnvAsDuration("HISTORY_TTL", 7*24*time.Hour),
		HistoryLimit:     getEnvAsInt64("HISTORY_LIMIT", 50),
		Env:              getEnv("ENV", "dev"),
	}
}

// HistoryEnabled reports whether uploads are recorded in Redis.
func (c *Config) HistoryEnabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := time.ParseDuration(value); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
