package config

import (
	"os"
	"strconv"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/cache"
)

// GetCacheConfig creates cache configuration from environment variables
func GetCacheConfig() cache.Config {
	return cache.Config{
		DefaultTTL:    getDurationEnv("CACHE_DEFAULT_TTL", 5*time.Minute),
		RedisAddr:     getStringEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getStringEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),
		EnableMemory:  getBoolEnv("CACHE_ENABLE_MEMORY", true),
		EnableRedis:   getBoolEnv("CACHE_ENABLE_REDIS", false),
	}
}

// Helper functions for environment variable parsing
func getStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
