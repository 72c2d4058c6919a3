package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the API server.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	Env         string
	DBDebug     bool
}

// Load reads configuration from the environment with sensible defaults.
// A local .env file is loaded first if present; explicit env vars win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "my_expense.db"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   parseDuration(getEnv("JWT_EXPIRES_IN", ""), 7*24*time.Hour),
		Env:         getEnv("APP_ENV", "development"),
		DBDebug:     os.Getenv("DB_DEBUG") == "1",
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("config: invalid duration %q, using default", raw)
		return def
	}
	return d
}
