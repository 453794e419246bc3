package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// envConfig is a DTO for environment overlay. Only variables that are set
// override values from earlier sources.
type envConfig struct {
	ServerBaseURL       string        `env:"IQRANOW_SERVER_URL"`
	RequestTimeout      time.Duration `env:"IQRANOW_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"IQRANOW_ONLINE_CHECK_INTERVAL"`
	DatabasePath        string        `env:"IQRANOW_DB_PATH"`
	LogLevel            string        `env:"IQRANOW_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.OnlineCheckInterval != 0 {
		cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
