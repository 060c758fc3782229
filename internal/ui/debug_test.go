package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/videohub/internal/otel"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDebugOverlayNilRing(t *testing.T) {
	result := debugOverlay(DefaultStyles(), nil, 80, 24)
	if result != "" {
		t.Errorf("debugOverlay(nil) should return empty string, got %q", result)
	}
}

func TestDebugOverlayRendersStats(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	ring.Push(otel.Event{Kind: otel.KindVideoOpen, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindVideoOpen, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindVideoClose, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindTabChange, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindSimTick, Time: time.Now()})

	result := debugOverlay(DefaultStyles(), ring, 80, 40)

	if !strings.Contains(result, "Session Stats") {
		t.Error("overlay should contain 'Session Stats' header")
	}
	if !strings.Contains(result, "2 opened, 1 closed") {
		t.Errorf("overlay should show player stats, got:\n%s", result)
	}
	if !strings.Contains(result, "1 tab changes, 0 favorite toggles") {
		t.Errorf("overlay should show feed stats, got:\n%s", result)
	}
	if !strings.Contains(result, "5 / 64 events") {
		t.Errorf("overlay should show buffer stats, got:\n%s", result)
	}
}

func TestDebugOverlayRecentEvents(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	ring.Push(otel.Event{Kind: otel.KindStartup, Time: time.Now(), Msg: "hello world"})
	ring.Push(otel.Event{Kind: otel.KindError, Time: time.Now(), Err: "timeout"})
	ring.Push(otel.Event{Kind: otel.KindVideoOpen, Time: time.Now(), VideoID: "4", Tab: "favorites"})

	result := debugOverlay(DefaultStyles(), ring, 80, 40)

	if !strings.Contains(result, "Recent Events") {
		t.Error("overlay should contain 'Recent Events' header")
	}
	for _, want := range []string{"hello world", "ERR:timeout", "id:4", "tab:favorites"} {
		if !strings.Contains(result, want) {
			t.Errorf("overlay missing %q, got:\n%s", want, result)
		}
	}
}

func TestDebugOverlayTruncation(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	for i := 0; i < 30; i++ {
		ring.Push(otel.Event{Kind: otel.KindSimTick, Time: time.Now()})
	}

	// Very small height should still render without panic
	result := debugOverlay(DefaultStyles(), ring, 80, 10)
	if result == "" {
		t.Error("overlay should still render with small height")
	}

	lines := strings.Count(result, "\n")
	if lines > 20 { // generous bound accounting for lipgloss borders
		t.Errorf("overlay should be truncated, got %d lines", lines)
	}
}

func TestDebugToggle(t *testing.T) {
	ring := otel.NewRingBuffer(16)
	app := newTestApp(AppConfig{Ring: ring})
	app = press(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})

	if app.debugVisible {
		t.Error("debug should be hidden initially")
	}

	app = press(t, app, runes("D"))
	if !app.debugVisible {
		t.Error("D should show debug overlay")
	}
	if view := app.View(); !strings.Contains(view, "[DEBUG]") {
		t.Errorf("debug view should contain '[DEBUG]', got:\n%s", view)
	}

	// Feed keys are swallowed while the panel is up.
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.State().Overlay.IsOpen() {
		t.Error("enter should be ignored while debug is visible")
	}

	app = press(t, app, runes("D"))
	if app.debugVisible {
		t.Error("second D should hide debug overlay")
	}
}

func TestDebugToggleWithoutRing(t *testing.T) {
	app := press(t, newTestApp(AppConfig{ShowDebug: true}), runes("D"))
	if app.debugVisible {
		t.Error("debug overlay needs a ring buffer")
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		dur  time.Duration
		want string
	}{
		{0, "0ms"},
		{50 * time.Millisecond, "50ms"},
		{999 * time.Millisecond, "999ms"},
		{1500 * time.Millisecond, "1.5s"},
		{30 * time.Second, "30.0s"},
		{90 * time.Second, "2m"}, // 1.5 minutes rounds to 2 with %.0f
		{5 * time.Minute, "5m"},
	}
	for _, tt := range tests {
		got := formatAge(tt.dur)
		if got != tt.want {
			t.Errorf("formatAge(%v) = %q, want %q", tt.dur, got, tt.want)
		}
	}
}

func TestFormatAgeNegative(t *testing.T) {
	got := formatAge(-5 * time.Second)
	if got != "0ms" {
		t.Errorf("formatAge(-5s) = %q, want \"0ms\"", got)
	}
}
