package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	RedisURL        string // Optional - sessions fall back to in-memory store
	Port            string
	Env             string // "development" or "production"
	FrontendURL     string // Allowed CORS origin for the browser client
	SessionTTLHours int    // Session lifetime in hours
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 168), // 7 days default
	}
}

// IsProduction reports whether the app runs with production settings
// (secure session cookies, gin release mode).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
