// Package ui provides the Bubble Tea TUI for VideoHub.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// playbackInterval is the wall-clock period of the playback clock.
const playbackInterval = time.Second

// playbackTickMsg advances the open video's playback clock.
type playbackTickMsg struct {
	At time.Time
}

func playbackTick() tea.Cmd {
	return tea.Tick(playbackInterval, func(t time.Time) tea.Msg {
		return playbackTickMsg{At: t}
	})
}
