package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8380 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8380)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should default on")
	}
	if cfg.Jobs.GaugeRefresh != "@every 5m" {
		t.Errorf("Jobs.GaugeRefresh = %q, want %q", cfg.Jobs.GaugeRefresh, "@every 5m")
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("CHOREBOARD_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != DefaultConfig().API.Port {
		t.Errorf("Port = %d, want default", cfg.API.Port)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CHOREBOARD_HOME", home)

	config := []byte("[api]\nport = 9000\n\n[jobs]\ngauge_refresh = \"@every 1h\"\n")
	if err := os.WriteFile(filepath.Join(home, "config.toml"), config, 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.API.Port)
	}
	if cfg.Jobs.GaugeRefresh != "@every 1h" {
		t.Errorf("GaugeRefresh = %q, want @every 1h", cfg.Jobs.GaugeRefresh)
	}
	// Untouched sections keep their defaults.
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want default", cfg.API.Host)
	}
}
