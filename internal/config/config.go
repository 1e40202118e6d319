package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, read from the environment. Command
// line flags override these values.
type Config struct {
	// Storage
	DBPath    string `env:"HOMESCAN_DB" envDefault:"homescan.sqlite3"`
	ImagesDir string `env:"HOMESCAN_IMAGES_DIR" envDefault:"images"`

	// Server
	Addr string `env:"HOMESCAN_ADDR" envDefault:":8080"`

	// Auth
	LocalAccounts bool `env:"HOMESCAN_LOCAL_ACCOUNTS" envDefault:"false"`

	// Logging
	LogPath string `env:"HOMESCAN_LOG"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
