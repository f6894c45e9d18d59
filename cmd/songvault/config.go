package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL   string
	Addr          string
	AllowedOrigin string
	JWTSecret     string
	LogLevel      string
	LogFormat     string
	SeedDemoData  bool
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	return Config{
		DatabaseURL:   dsn,
		Addr:          fmt.Sprintf(":%s", envOrDefault("PORT", "8080")),
		AllowedOrigin: envOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		JWTSecret:     envOrDefault("JWT_SECRET", "songvault-dev-secret"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		SeedDemoData:  os.Getenv("SEED_DEMO_DATA") == "true",
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
