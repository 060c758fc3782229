// Command videohub is a terminal video browser over a fixed collection with
// a simulated audience.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/abelbrown/videohub/internal/config"
	"github.com/abelbrown/videohub/internal/logging"
	"github.com/abelbrown/videohub/internal/metrics"
	"github.com/abelbrown/videohub/internal/otel"
	"github.com/abelbrown/videohub/internal/sim"
	"github.com/abelbrown/videohub/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type flags struct {
	configPath  string
	seed        int64
	tab         string
	debug       bool
	metricsAddr string
	writeConfig bool
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Config file (default ~/.videohub/config.json)")
	flag.Int64Var(&f.seed, "seed", 0, "Simulator seed; 0 keeps the configured seed")
	flag.StringVar(&f.tab, "tab", "", "Start tab: home, youtube, tiktok, favorites, profile")
	flag.BoolVar(&f.debug, "debug", false, "Open the debug panel at startup")
	flag.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	flag.BoolVar(&f.writeConfig, "write-config", false, "Write the effective config and exit")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "videohub: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, f)

	if f.writeConfig {
		path := f.configPath
		if path == "" {
			path = config.ConfigPath()
		}
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	ring := otel.NewRingBuffer(otel.DefaultRingSize)
	events, closeEvents, err := openEventLog(cfg)
	if err != nil {
		return err
	}
	events.SetRingBuffer(ring)
	defer closeEvents()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, reg); err != nil {
				logging.Error("metrics listener failed", "addr", cfg.Metrics.Addr, "err", err)
				events.Error(otel.KindError, "metrics", err)
			}
		}()
	}

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	settings := cfg.SimSettings()

	logging.Info("videohub started",
		"session", events.SessionID(),
		"seed", seed,
		"tab", cfg.StartTab().String(),
		"simulator", cfg.Simulator.Enabled,
		"interval", settings.Interval,
	)
	events.Info(otel.KindStartup, "main", "videohub started")

	app := ui.NewApp(ui.AppConfig{
		Videos:      catalog.Seed(),
		StartTab:    cfg.StartTab(),
		Rand:        rand.New(rand.NewSource(seed)),
		Simulator:   settings,
		AutoAdvance: cfg.Player.AutoAdvance,
		Speed:       cfg.Player.Speed,
		Events:      events,
		Ring:        ring,
		Metrics:     m,
		ShowDebug:   cfg.UI.ShowDebug,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())

	var ticker *sim.Ticker
	if cfg.Simulator.Enabled {
		ticker = sim.NewTicker(settings.Interval)
		ticker.Start(ctx, program)
	}

	// Run UI (blocks until quit)
	_, runErr := program.Run()
	if runErr != nil {
		logging.Error("program exited", "err", runErr)
		events.Error(otel.KindError, "main", runErr)
	}

	cancel()
	if ticker != nil {
		ticker.Wait()
	}

	logging.Info("videohub shutting down")
	events.Info(otel.KindShutdown, "main", "videohub stopped")
	return runErr
}

// applyFlags layers command-line overrides over the loaded config.
func applyFlags(cfg *config.Config, f flags) {
	if f.seed != 0 {
		cfg.Simulator.Seed = f.seed
	}
	if f.tab != "" {
		cfg.UI.StartTab = f.tab
	}
	if f.debug {
		cfg.UI.ShowDebug = true
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	cfg.Validate()
}

// openEventLog opens the JSONL event log in append mode. With events
// disabled the logger still feeds the debug panel's ring buffer.
func openEventLog(cfg *config.Config) (*otel.Logger, func(), error) {
	if !cfg.Log.Events {
		l := otel.NewNullLogger()
		return l, l.Close, nil
	}

	path := config.EventLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}

	l := otel.NewLogger(file)
	closeFn := func() {
		l.Close()
		file.Close()
	}
	return l, closeFn, nil
}
