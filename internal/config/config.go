// Package config holds runtime configuration and the tuning constants
// shared across packages. Values come from the environment; cmd/main.go
// loads .env via godotenv before Load is called.
package config

import "os"

// Config carries everything the process needs to wire itself up.
type Config struct {
	ListenAddr  string
	DatabaseDSN string
	RedisAddr   string
	RedisPass   string
	JWTSecret   string

	// Telegram notifications are optional; empty token disables them.
	TelegramToken  string
	TelegramChatID string
}

// Load reads the configuration from environment variables, falling back
// to local development defaults where that is safe.
func Load() *Config {
	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=wheely password=wheely dbname=wheelydb port=5432 sslmode=disable"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-only-secret"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
