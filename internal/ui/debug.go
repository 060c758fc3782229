package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/videohub/internal/otel"
	"github.com/mattn/go-runewidth"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
// Must be updated if DebugPanel style changes.
const debugPanelChrome = 4

// debugOverlay renders the debug panel showing session stats and recent events.
// Pure function with no side effects. Returns empty string if ring is nil.
func debugOverlay(s Styles, ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	recent := ring.Last(20)

	// Keyed lookups, not map iteration, so the order is stable.
	var lines []string
	lines = append(lines, s.DebugHeader.Render("Session Stats"))
	lines = append(lines, fmt.Sprintf("  Player:     %d opened, %d closed, %d steps, %d auto",
		stats[otel.KindVideoOpen], stats[otel.KindVideoClose], stats[otel.KindVideoStep], stats[otel.KindAutoAdvance]))
	lines = append(lines, fmt.Sprintf("  Feed:       %d tab changes, %d favorite toggles",
		stats[otel.KindTabChange], stats[otel.KindFavorite]))
	lines = append(lines, fmt.Sprintf("  Simulator:  %d ticks", stats[otel.KindSimTick]))
	lines = append(lines, fmt.Sprintf("  Errors:     %d", stats[otel.KindError]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, s.DebugHeader.Render("Recent Events"))
	for _, e := range recent {
		line := fmt.Sprintf("  %6s  %-20s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.VideoID != "" {
			line += "  id:" + e.VideoID
		}
		if e.Tab != "" {
			line += "  tab:" + e.Tab
		}
		if e.Count != 0 {
			line += fmt.Sprintf("  n:%d", e.Count)
		}
		if e.Msg != "" {
			line += "  " + runewidth.Truncate(e.Msg, 40, "…")
		}
		if e.Err != "" {
			line += "  ERR:" + runewidth.Truncate(e.Err, 30, "…")
		}
		lines = append(lines, line)
	}

	// Truncate to fit terminal height (subtract chrome added by DebugPanel border/padding)
	maxHeight := height - debugPanelChrome
	if maxHeight < 1 {
		maxHeight = 1
	}
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := 76
	if panelWidth > width-4 {
		panelWidth = width - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	return s.DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration as a compact human string.
// Handles negative durations from clock skew by clamping to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

// debugStatusBar renders the status bar for the debug overlay.
func debugStatusBar(s Styles, width int) string {
	k := s.StatusBarKey.Render("D") + s.StatusBarText.Render(":close")
	return s.StatusBar.Width(width).Render("  [DEBUG]  " + k)
}
