package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the IqraNow CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend API (scheme://host:port).
//   - RequestTimeout: per-request deadline for API calls.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: location of the local sqlite state database.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	ServerBaseURL       string        `validate:"required,url"`
	RequestTimeout      time.Duration `validate:"gt=0"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
	DatabasePath        string        `validate:"required"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "iqranow.db"
	c.LogLevel = "info"
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
