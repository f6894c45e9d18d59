package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the console settings loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Seed     SeedConfig     `toml:"seed"`
}

// DatabaseConfig points at the local SQLite file.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SeedConfig controls demo data loading.
type SeedConfig struct {
	DemoData bool `toml:"demo_data"`
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./songvault.db"},
		Logging:  LoggingConfig{Level: "warn", Format: "text"},
	}
}

// loadConfig reads the TOML file at configPath, creating it with defaults
// when missing. SONGVAULT_DB_PATH overrides the database path.
func loadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.saveToFile(configPath); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	} else if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if path := os.Getenv("SONGVAULT_DB_PATH"); path != "" {
		cfg.Database.Path = path
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}
	return cfg, nil
}

func (c *Config) saveToFile(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
