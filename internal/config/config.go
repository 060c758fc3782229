package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abelbrown/videohub/internal/feed"
	"github.com/abelbrown/videohub/internal/sim"
)

// Config is the persistent application configuration
type Config struct {
	Simulator SimulatorConfig `json:"simulator"`
	Player    PlayerConfig    `json:"player"`
	UI        UIConfig        `json:"ui"`
	Log       LogConfig       `json:"log"`
	Metrics   MetricsConfig   `json:"metrics"`
}

// SimulatorConfig tunes the fake audience
type SimulatorConfig struct {
	Enabled     bool    `json:"enabled"`
	IntervalMs  int     `json:"interval_ms"`
	Probability float64 `json:"probability"`
	TickMin     int64   `json:"tick_min"`
	TickMax     int64   `json:"tick_max"`
	OpenMin     int64   `json:"open_min"`
	OpenMax     int64   `json:"open_max"`
	Seed        int64   `json:"seed"` // 0 = seed from the clock
}

// PlayerConfig holds playback preferences
type PlayerConfig struct {
	AutoAdvance bool    `json:"auto_advance"`
	Speed       float64 `json:"speed"` // playback clock multiplier
}

// UIConfig holds UI preferences
type UIConfig struct {
	StartTab  string `json:"start_tab"`
	ShowDebug bool   `json:"show_debug"`
}

// LogConfig controls the file logger and the JSONL event log
type LogConfig struct {
	Level  string `json:"level"`
	Dir    string `json:"dir,omitempty"` // empty = ~/.videohub/logs
	Events bool   `json:"events"`
}

// MetricsConfig controls the optional Prometheus listener
type MetricsConfig struct {
	Addr string `json:"addr,omitempty"` // empty = disabled
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	d := sim.DefaultSettings()
	return &Config{
		Simulator: SimulatorConfig{
			Enabled:     true,
			IntervalMs:  int(d.Interval / time.Millisecond),
			Probability: d.Probability,
			TickMin:     d.TickMin,
			TickMax:     d.TickMax,
			OpenMin:     d.OpenMin,
			OpenMax:     d.OpenMax,
		},
		Player: PlayerConfig{
			AutoAdvance: true,
			Speed:       1.0,
		},
		UI: UIConfig{
			StartTab: feed.TabHome.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Events: true,
		},
	}
}

// DataDir returns ~/.videohub, the home of the config file, logs and the
// event log.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".videohub")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// EventLogPath returns the path to the JSONL event log.
func EventLogPath() string {
	return filepath.Join(DataDir(), "videohub.events.jsonl")
}

// Load reads config from path, or returns defaults when the file is absent.
// An empty path means ConfigPath. Environment overrides are applied and the
// result is validated either way.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		// Unmarshal over defaults so missing keys keep their default value.
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.AutoPopulateFromEnv()
	cfg.Validate()
	return cfg, nil
}

// Save writes config to path. An empty path means ConfigPath.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// AutoPopulateFromEnv applies VIDEOHUB_* overrides. Unparseable values are ignored.
func (c *Config) AutoPopulateFromEnv() {
	if v := os.Getenv("VIDEOHUB_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Simulator.Seed = n
		}
	}
	if v := os.Getenv("VIDEOHUB_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Simulator.IntervalMs = n
		}
	}
	if v := os.Getenv("VIDEOHUB_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("VIDEOHUB_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("VIDEOHUB_START_TAB"); v != "" {
		c.UI.StartTab = v
	}
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	d := DefaultConfig()
	s := &c.Simulator
	if s.IntervalMs <= 0 {
		s.IntervalMs = d.Simulator.IntervalMs
	}
	if s.Probability < 0 || s.Probability > 1 {
		s.Probability = d.Simulator.Probability
	}
	if s.TickMin < 0 || s.TickMin > s.TickMax {
		s.TickMin, s.TickMax = d.Simulator.TickMin, d.Simulator.TickMax
	}
	if s.OpenMin < 0 || s.OpenMin > s.OpenMax {
		s.OpenMin, s.OpenMax = d.Simulator.OpenMin, d.Simulator.OpenMax
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = d.Player.Speed
	}
	if _, ok := feed.ParseTab(c.UI.StartTab); !ok {
		c.UI.StartTab = d.UI.StartTab
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// SimSettings converts the simulator section for the sim package.
func (c *Config) SimSettings() sim.Settings {
	return sim.Settings{
		Interval:    time.Duration(c.Simulator.IntervalMs) * time.Millisecond,
		Probability: c.Simulator.Probability,
		TickMin:     c.Simulator.TickMin,
		TickMax:     c.Simulator.TickMax,
		OpenMin:     c.Simulator.OpenMin,
		OpenMax:     c.Simulator.OpenMax,
	}
}

// StartTab returns the configured initial tab.
func (c *Config) StartTab() feed.Tab {
	t, ok := feed.ParseTab(c.UI.StartTab)
	if !ok {
		return feed.TabHome
	}
	return t
}
