// Package config loads the commandhandlers configuration from an optional
// TOML file and COMMANDHANDLERS_* environment variables. Environment values
// win over the file, which wins over defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "COMMANDHANDLERS_"

type Config struct {
	Dispatcher DispatcherConfig `toml:"dispatcher" envPrefix:"DISPATCHER_"`
	Handlers   HandlersConfig   `toml:"handlers" envPrefix:"HANDLERS_"`
	Log        LogConfig        `toml:"log" envPrefix:"LOG_"`
	Telemetry  TelemetryConfig  `toml:"telemetry" envPrefix:"TELEMETRY_"`
}

type DispatcherConfig struct {
	Name          string        `toml:"name" env:"NAME"`
	SlowThreshold time.Duration `toml:"slow_threshold" env:"SLOW_THRESHOLD"`
}

// HandlersConfig holds the fixed values partially applied to the command
// handlers at bootstrap.
type HandlersConfig struct {
	DeactivateSeed int    `toml:"deactivate_seed" env:"DEACTIVATE_SEED"`
	ReactivateUser string `toml:"reactivate_user" env:"REACTIVATE_USER"`
}

type LogConfig struct {
	Level     string `toml:"level" env:"LEVEL"`
	NoColor   bool   `toml:"no_color" env:"NOCOLOR"`
	Timestamp bool   `toml:"timestamp" env:"TIMESTAMP"`
}

type TelemetryConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Endpoint    string `toml:"endpoint" env:"ENDPOINT"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

func Default() Config {
	return Config{
		Dispatcher: DispatcherConfig{
			Name:          "commands",
			SlowThreshold: 20 * time.Millisecond,
		},
		Handlers: HandlersConfig{
			DeactivateSeed: 123,
			ReactivateUser: "Flerin",
		},
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "commandhandlers",
		},
	}
}

// Load returns the defaults overlaid with path (when non-empty) and then the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Dispatcher.Name) == "" {
		return fmt.Errorf("dispatcher name is required")
	}
	if c.Dispatcher.SlowThreshold < 0 {
		return fmt.Errorf("dispatcher slow_threshold must not be negative: %s", c.Dispatcher.SlowThreshold)
	}
	if c.Telemetry.Enabled && strings.TrimSpace(c.Telemetry.Endpoint) == "" {
		return fmt.Errorf("telemetry endpoint is required when telemetry is enabled")
	}
	return nil
}
