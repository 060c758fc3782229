package main

import (
	"testing"

	"github.com/abelbrown/videohub/internal/config"
	"github.com/abelbrown/videohub/internal/feed"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		f     flags
		check func(*config.Config) bool
	}{
		{"no flags keeps config", flags{}, func(c *config.Config) bool {
			return c.Simulator.Seed == 0 && c.StartTab() == feed.TabHome && !c.UI.ShowDebug && c.Metrics.Addr == ""
		}},
		{"seed", flags{seed: 99}, func(c *config.Config) bool { return c.Simulator.Seed == 99 }},
		{"tab", flags{tab: "TikTok"}, func(c *config.Config) bool { return c.StartTab() == feed.TabTikTok }},
		{"bad tab falls back", flags{tab: "reels"}, func(c *config.Config) bool { return c.StartTab() == feed.TabHome }},
		{"debug", flags{debug: true}, func(c *config.Config) bool { return c.UI.ShowDebug }},
		{"metrics", flags{metricsAddr: ":9100"}, func(c *config.Config) bool { return c.Metrics.Addr == ":9100" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyFlags(cfg, tt.f)
			if !tt.check(cfg) {
				t.Errorf("config after flags: %+v", cfg)
			}
		})
	}
}

func TestOpenEventLogDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Events = false

	l, closeFn, err := openEventLog(cfg)
	if err != nil {
		t.Fatalf("openEventLog: %v", err)
	}
	if l == nil || l.SessionID() == "" {
		t.Error("disabled event log should still return a working logger")
	}
	closeFn()
}
