package sim

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered to the program on every simulator tick.
type TickMsg struct {
	At time.Time
}

// Sender is anything that accepts program messages; *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Ticker drives the simulator from a background goroutine. It never touches
// the collection itself: it only posts TickMsg, and the program applies the
// tick inside its update loop.
type Ticker struct {
	interval time.Duration
	wg       sync.WaitGroup
}

// NewTicker creates a ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultSettings().Interval
	}
	return &Ticker{interval: interval}
}

// Start launches the tick loop. It stops when ctx is cancelled.
func (t *Ticker) Start(ctx context.Context, sender Sender) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				sender.Send(TickMsg{At: now})
			}
		}
	}()
}

// Wait blocks until the tick loop exits.
// Call after cancelling the context passed to Start.
func (t *Ticker) Wait() {
	t.wg.Wait()
}
