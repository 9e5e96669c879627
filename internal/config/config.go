package config

import (
	"os"
	"strings"
)

// Config holds application configuration from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	DBPath      string
	ContentFile string
	LogLevel    string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

// Load reads configuration from environment variables with defaults.
// It does not fail on a missing admin password: that is reported per request
// by the admin gate.
func Load() Config {
	return Config{
		Port:              envOr("PORT", "3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBPath:            envOr("DB_PATH", "database.db"),
		ContentFile:       os.Getenv("CONTENT_FILE"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		AdminUsername:     envOr("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// UsePostgres reports whether DatabaseURL points at a PostgreSQL server.
// Otherwise the embedded SQLite store at DBPath is used.
func (c Config) UsePostgres() bool {
	u := strings.ToLower(c.DatabaseURL)
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
