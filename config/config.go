// Package config loads server settings from the environment, reading a
// local .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the orgflow server.
type Config struct {
	Mode        string        `env:"ORGFLOW_MODE" envDefault:"development"`
	Addr        string        `env:"ORGFLOW_ADDR" envDefault:":8000"`
	DatabaseURL string        `env:"DATABASE_URL"`
	JWTSecret   string        `env:"ORGFLOW_JWT_SECRET"`
	TokenTTL    time.Duration `env:"ORGFLOW_TOKEN_TTL" envDefault:"168h"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); !errors.Is(err, os.ErrNotExist) {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
