package main

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// config holds runtime settings read from the environment (and .env when present).
type config struct {
	Port           string
	AppEnv         string
	DBURL          string        // empty → in-memory session store
	SessionTTL     time.Duration // idle sessions older than this are ended
	AllowedOrigins []string
}

func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	return config{
		Port:           getEnv("PORT", "3000"),
		AppEnv:         normalizeEnv(getEnv("APP_ENV", "development")),
		DBURL:          getEnv("DB_URL", ""),
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
