package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	if cfg.Web.Port != 1980 {
		t.Errorf("port = %d, want 1980", cfg.Web.Port)
	}
	if cfg.Simulation.RefreshInterval != 10 {
		t.Errorf("refresh interval = %d, want 10", cfg.Simulation.RefreshInterval)
	}
	if cfg.Simulation.LatencyModel != "distance" {
		t.Errorf("latency model = %q, want distance", cfg.Simulation.LatencyModel)
	}
	if cfg.Simulation.ExchangeRegionProbability != 0.30 {
		t.Errorf("exchange-region probability = %v, want 0.30", cfg.Simulation.ExchangeRegionProbability)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "latencyglobe.yml")
	content := []byte(`
web:
  host: 127.0.0.1
  port: 9090
simulation:
  refresh_interval: 5
  latency_model: uniform
`)
	if err := os.WriteFile(cfile, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig(cfile)

	if cfg.Web.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Web.Port)
	}
	if cfg.Simulation.RefreshInterval != 5 {
		t.Errorf("refresh interval = %d, want 5", cfg.Simulation.RefreshInterval)
	}
	if cfg.Simulation.LatencyModel != "uniform" {
		t.Errorf("latency model = %q, want uniform", cfg.Simulation.LatencyModel)
	}
	// Fields absent from the file keep their defaults
	if cfg.Simulation.HistoryPoints != 100 {
		t.Errorf("history points = %d, want default 100", cfg.Simulation.HistoryPoints)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LATENCYGLOBE_WEB_PORT", "8088")
	t.Setenv("LATENCYGLOBE_SIM_LATENCY_MODEL", "uniform")

	cfg := LoadConfig("")

	if cfg.Web.Port != 8088 {
		t.Errorf("port = %d, want env override 8088", cfg.Web.Port)
	}
	if cfg.Simulation.LatencyModel != "uniform" {
		t.Errorf("latency model = %q, want env override uniform", cfg.Simulation.LatencyModel)
	}
}

func TestLoadConfigRepairsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "latencyglobe.yml")
	content := []byte(`
simulation:
  refresh_interval: -1
  history_points: 0
`)
	if err := os.WriteFile(cfile, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig(cfile)

	if cfg.Simulation.RefreshInterval != 10 {
		t.Errorf("refresh interval = %d, want repaired 10", cfg.Simulation.RefreshInterval)
	}
	if cfg.Simulation.HistoryPoints != 100 {
		t.Errorf("history points = %d, want repaired 100", cfg.Simulation.HistoryPoints)
	}
}
