// Package config loads the cadence configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWatchIntervalSeconds is the escalation watch loop default tick.
const DefaultWatchIntervalSeconds = 60

// Config represents the flat cadence configuration.
type Config struct {
	DBPath               string `json:"db_path,omitempty"`
	TemplatesDir         string `json:"templates_dir,omitempty"`
	WatchIntervalSeconds int    `json:"watch_interval_seconds,omitempty"`
}

// Dir returns the cadence home directory (~/.cadence).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cadence"), nil
}

// Load reads ~/.cadence/config.json, filling defaults for anything unset.
// A missing file is not an error - defaults apply.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "cadence.db")
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = filepath.Join(dir, "templates")
	}
	if cfg.WatchIntervalSeconds <= 0 {
		cfg.WatchIntervalSeconds = DefaultWatchIntervalSeconds
	}

	return cfg, nil
}

// Save writes config.json to the cadence home directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
