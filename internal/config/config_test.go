package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abelbrown/videohub/internal/feed"
	"github.com/abelbrown/videohub/internal/sim"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"VIDEOHUB_SEED", "VIDEOHUB_TICK_MS", "VIDEOHUB_LOG_LEVEL", "VIDEOHUB_METRICS_ADDR", "VIDEOHUB_START_TAB"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.SimSettings(), sim.DefaultSettings(); got != want {
		t.Errorf("SimSettings = %+v, want %+v", got, want)
	}
	if !cfg.Simulator.Enabled || !cfg.Player.AutoAdvance || cfg.Player.Speed != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.StartTab() != feed.TabHome {
		t.Errorf("StartTab = %v, want home", cfg.StartTab())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := DefaultConfig()
	cfg.Simulator.Seed = 42
	cfg.UI.StartTab = "tiktok"
	cfg.Metrics.Addr = ":9100"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Simulator.Seed != 42 || got.StartTab() != feed.TabTikTok || got.Metrics.Addr != ":9100" {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"simulator":{"probability":0.5}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulator.Probability != 0.5 {
		t.Errorf("Probability = %v, want 0.5", cfg.Simulator.Probability)
	}
	if cfg.Simulator.IntervalMs != 3000 || cfg.Simulator.TickMax != 149 {
		t.Errorf("defaults lost: %+v", cfg.Simulator)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIDEOHUB_SEED", "7")
	t.Setenv("VIDEOHUB_TICK_MS", "500")
	t.Setenv("VIDEOHUB_LOG_LEVEL", "DEBUG")
	t.Setenv("VIDEOHUB_METRICS_ADDR", "127.0.0.1:9000")
	t.Setenv("VIDEOHUB_START_TAB", "favorites")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulator.Seed != 7 {
		t.Errorf("Seed = %d", cfg.Simulator.Seed)
	}
	if cfg.SimSettings().Interval != 500*time.Millisecond {
		t.Errorf("Interval = %v", cfg.SimSettings().Interval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Metrics.Addr)
	}
	if cfg.StartTab() != feed.TabFavorites {
		t.Errorf("StartTab = %v", cfg.StartTab())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Config)
		check func(*Config) bool
	}{
		{"zero interval", func(c *Config) { c.Simulator.IntervalMs = 0 }, func(c *Config) bool { return c.Simulator.IntervalMs == 3000 }},
		{"probability above one", func(c *Config) { c.Simulator.Probability = 1.5 }, func(c *Config) bool { return c.Simulator.Probability == 0.3 }},
		{"negative probability", func(c *Config) { c.Simulator.Probability = -0.1 }, func(c *Config) bool { return c.Simulator.Probability == 0.3 }},
		{"inverted tick range", func(c *Config) { c.Simulator.TickMin = 200 }, func(c *Config) bool { return c.Simulator.TickMin == 50 && c.Simulator.TickMax == 149 }},
		{"inverted open range", func(c *Config) { c.Simulator.OpenMax = 1 }, func(c *Config) bool { return c.Simulator.OpenMin == 10 && c.Simulator.OpenMax == 59 }},
		{"zero speed", func(c *Config) { c.Player.Speed = 0 }, func(c *Config) bool { return c.Player.Speed == 1 }},
		{"unknown tab", func(c *Config) { c.UI.StartTab = "shorts" }, func(c *Config) bool { return c.UI.StartTab == "home" }},
		{"blank level", func(c *Config) { c.Log.Level = " " }, func(c *Config) bool { return c.Log.Level == "info" }},
		{"valid edge probability", func(c *Config) { c.Simulator.Probability = 1 }, func(c *Config) bool { return c.Simulator.Probability == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(cfg)
			cfg.Validate()
			if !tt.check(cfg) {
				t.Errorf("after Validate: %+v", cfg)
			}
		})
	}
}

func TestPathsShareDataDir(t *testing.T) {
	dir := DataDir()
	for _, p := range []string{ConfigPath(), EventLogPath()} {
		if filepath.Dir(p) != dir {
			t.Errorf("%s is not under %s", p, dir)
		}
	}
}
