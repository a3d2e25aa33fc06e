// Package config loads lvroute settings: YAML file first, then LVROUTE_*
// environment overrides on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for every rejected field.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Source    string          `yaml:"source"`
	Solo      RunConfig       `yaml:"solo"`
	Duo       RunConfig       `yaml:"duo"`
	Search    SearchConfig    `yaml:"search"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// RunConfig is one explorer configuration: time budget T and frontier size K.
type RunConfig struct {
	Budget   int `yaml:"budget"`
	Capacity int `yaml:"capacity"`
}

type SearchConfig struct {
	Workers      int  `yaml:"workers"`
	BoundPruning bool `yaml:"bound_pruning"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TelemetryConfig struct {
	Stdout bool `yaml:"stdout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: "AA",
		Solo:   RunConfig{Budget: 30, Capacity: 1},
		Duo:    RunConfig{Budget: 26, Capacity: 2000},
		Search: SearchConfig{Workers: 1},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LVROUTE_SOURCE"); v != "" {
		cfg.Source = v
	}
	setInt("LVROUTE_SOLO_BUDGET", &cfg.Solo.Budget)
	setInt("LVROUTE_SOLO_CAPACITY", &cfg.Solo.Capacity)
	setInt("LVROUTE_DUO_BUDGET", &cfg.Duo.Budget)
	setInt("LVROUTE_DUO_CAPACITY", &cfg.Duo.Capacity)
	setInt("LVROUTE_WORKERS", &cfg.Search.Workers)
	setBool("LVROUTE_BOUND_PRUNING", &cfg.Search.BoundPruning)
	setBool("LVROUTE_TELEMETRY_STDOUT", &cfg.Telemetry.Stdout)
	if v := os.Getenv("LVROUTE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LVROUTE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate rejects negative budgets, capacities or worker counts below one,
// and an empty source.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is empty: %w", ErrInvalid)
	}
	runs := []struct {
		name string
		rc   RunConfig
	}{{"solo", c.Solo}, {"duo", c.Duo}}
	for _, r := range runs {
		if r.rc.Budget < 0 {
			return fmt.Errorf("%s.budget=%d: %w", r.name, r.rc.Budget, ErrInvalid)
		}
		if r.rc.Capacity < 1 {
			return fmt.Errorf("%s.capacity=%d: %w", r.name, r.rc.Capacity, ErrInvalid)
		}
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers=%d: %w", c.Search.Workers, ErrInvalid)
	}
	return nil
}
