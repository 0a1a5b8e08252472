package config

import (
	"os"

	"todo_api/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost     string
	AppPort     string
	DatabaseURL string
	LogLevel    string
	LogJSON     bool
}

// Load reads configuration from the environment, with .env as a fallback.
// DATABASE_URL is required; everything else has a default.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "127.0.0.1"
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		AppHost:     host,
		AppPort:     port,
		DatabaseURL: dbURL,
		LogLevel:    level,
		LogJSON:     os.Getenv("LOG_JSON") == "true",
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}
