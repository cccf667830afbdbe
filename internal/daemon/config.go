// Package daemon manages the ChoreBoard daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Storage   StorageConfig   `toml:"storage"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Jobs      JobsConfig      `toml:"jobs"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StorageConfig controls where the event and profile stores live.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// TelemetryConfig controls observability exports.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// JobsConfig controls background jobs. Cron specs use the robfig/cron
// syntax, including @every shorthands.
type JobsConfig struct {
	GaugeRefresh string `toml:"gauge_refresh"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8380,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Dir: choreboardHome(),
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Jobs: JobsConfig{
			GaugeRefresh: "@every 5m",
		},
	}
}

// LoadConfig reads config from ~/.choreboard/config.toml, falling back
// to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(choreboardHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = choreboardHome()
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.choreboard/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(choreboardHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// choreboardHome returns the ChoreBoard data directory.
func choreboardHome() string {
	if env := os.Getenv("CHOREBOARD_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".choreboard")
}

// Home is exported for use by other packages.
func Home() string {
	return choreboardHome()
}
