package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration, loaded from environment
// variables (a .env file is read by cmd/server before Load runs).
type Config struct {
	Port string

	// DBType selects the GORM dialector: "postgres" (default) or "sqlite"
	DBType      string
	DatabaseURL string // postgres DSN
	DBPath      string // sqlite file path

	SessionSecret string
	JWTSecret     string
	TokenTTLMin   int
}

// Load reads configuration from environment variables, falling back to
// local-dev defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBType:        getEnv("DB_TYPE", "postgres"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=prodiny port=5432 sslmode=disable TimeZone=UTC"),
		DBPath:        getEnv("DB_PATH", "prodiny.db"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		TokenTTLMin:   getEnvAsInt("TOKEN_TTL_MINUTES", 30),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
