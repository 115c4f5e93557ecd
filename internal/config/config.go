// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// HTTPAddr is the listen address for the HTTP/WebSocket server.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// DBPath points at the finished-game archive. Empty disables it.
	DBPath string `env:"DB_PATH"`

	// CodeLength is the number of characters in generated room codes.
	CodeLength int `env:"CODE_LENGTH" envDefault:"6"`

	// AllowedOrigin restricts websocket upgrades to one Origin header
	// value. Empty allows all origins.
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CodeLength < 4 {
		return Config{}, fmt.Errorf("CODE_LENGTH %d too short, need at least 4", cfg.CodeLength)
	}
	return cfg, nil
}
