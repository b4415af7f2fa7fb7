// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is read first (missing is fine);
// real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ColorMode selects colored or plain output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds every environment-driven setting.
type Config struct {
	LogLevel         string    `env:"LOG_LEVEL" envDefault:"warn"`
	LogFile          string    `env:"LOG_FILE"`
	DifficultiesFile string    `env:"DIFFICULTIES_FILE"`
	Color            ColorMode `env:"CODEBREAKER_COLOR" envDefault:"auto"`
	StatsBackend     string    `env:"STATS_BACKEND" envDefault:"sqlite"`
	DailySalt        string    `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (when present) and parses the environment into a Config.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("CODEBREAKER_COLOR: unknown mode %q (want auto|always|never)", c.Color)
	}
	switch c.StatsBackend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("STATS_BACKEND: unknown backend %q (want sqlite|memory)", c.StatsBackend)
	}
	return nil
}
