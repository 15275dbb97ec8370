package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	CORSOrigins string
	SiteURL     string

	DefaultLocale string

	SpotifyClientID     string
	SpotifyClientSecret string

	CommentCacheTTL time.Duration
	CatalogCacheTTL time.Duration
	ThreadStateTTL  time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		SiteURL:     getEnv("SITE_URL", "http://localhost:3000"),

		DefaultLocale: getEnv("DEFAULT_LOCALE", "ja"),

		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),

		CommentCacheTTL: getDurationEnv("COMMENT_CACHE_TTL", 5*time.Minute),
		CatalogCacheTTL: getDurationEnv("CATALOG_CACHE_TTL", 10*time.Minute),
		ThreadStateTTL:  getDurationEnv("THREAD_STATE_TTL", 30*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
