package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/abelbrown/videohub/internal/feed"
	"github.com/abelbrown/videohub/internal/hub"
	"github.com/abelbrown/videohub/internal/logging"
	"github.com/abelbrown/videohub/internal/metrics"
	"github.com/abelbrown/videohub/internal/otel"
	"github.com/abelbrown/videohub/internal/sim"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppConfig wires the App to its collaborators. Zero values are usable:
// the seed collection, the home tab, a clock-seeded Rand, default simulator
// settings, 1x speed, and no event log or metrics.
type AppConfig struct {
	Videos      []catalog.Video
	StartTab    feed.Tab
	Rand        sim.Rand
	Simulator   sim.Settings
	AutoAdvance bool
	Speed       float64

	Events    *otel.Logger
	Ring      *otel.RingBuffer
	Metrics   *metrics.Metrics
	ShowDebug bool
	Styles    *Styles
}

// App is the root Bubble Tea model.
// It owns the hub.State; every message replaces it whole.
type App struct {
	state  hub.State
	cursor int // selected card within the current feed

	rand        sim.Rand
	sim         sim.Settings
	autoAdvance bool
	speed       float64

	events  *otel.Logger
	ring    *otel.RingBuffer
	metrics *metrics.Metrics

	styles Styles
	help   help.Model
	prog   progress.Model

	width        int
	height       int
	ready        bool
	debugVisible bool
}

// NewApp creates an App from cfg.
func NewApp(cfg AppConfig) App {
	videos := cfg.Videos
	if videos == nil {
		videos = catalog.Seed()
	}
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	set := cfg.Simulator
	if set == (sim.Settings{}) {
		set = sim.DefaultSettings()
	}
	speed := cfg.Speed
	if speed <= 0 {
		speed = 1
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	a := App{
		state:        hub.New(videos, cfg.StartTab),
		rand:         r,
		sim:          set,
		autoAdvance:  cfg.AutoAdvance,
		speed:        speed,
		events:       cfg.Events,
		ring:         cfg.Ring,
		metrics:      cfg.Metrics,
		styles:       styles,
		help:         help.New(),
		prog:         progress.New(progress.WithGradient("#5A56E0", "#EE6FF8"), progress.WithoutPercentage()),
		debugVisible: cfg.ShowDebug && cfg.Ring != nil,
	}
	a.metrics.SetFavorites(a.state.FavoriteCount())
	return a
}

// Init starts the playback clock.
func (a App) Init() tea.Cmd {
	return playbackTick()
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if otel.TraceEnabled() {
		a.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindMsgReceived, Comp: "ui", Msg: fmt.Sprintf("%T", msg)})
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case sim.TickMsg:
		var bumped int
		var added int64
		a.state, bumped, added = a.state.Tick(a.sim, a.rand)
		a.metrics.Tick(added)
		a.events.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindSimTick,
			Comp:  "sim",
			Count: bumped,
			Extra: map[string]any{"views_added": added},
		})
		return a, nil

	case playbackTickMsg:
		a.advancePlayback()
		return a, playbackTick()
	}

	return a, nil
}

func (a *App) advancePlayback() {
	d := time.Duration(float64(playbackInterval) * a.speed)
	var outcome hub.Playback
	a.state, outcome = a.state.AdvancePlayback(d, a.autoAdvance)

	switch outcome {
	case hub.PlaybackAdvanced:
		a.metrics.Step("auto")
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindAutoAdvance, Comp: "player", VideoID: a.state.Overlay.VideoID()})
		a.syncCursor()
	case hub.PlaybackEnded:
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindPlaybackEnd, Comp: "player", VideoID: a.state.Overlay.VideoID()})
	}
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Debug):
		if a.ring != nil {
			a.debugVisible = !a.debugVisible
		}
		return a, nil
	}

	if a.debugVisible {
		return a, nil
	}

	if key.Matches(msg, keys.Help) {
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	}

	if a.selectTab(msg) {
		return a, nil
	}

	if a.state.Overlay.IsOpen() {
		a.handlePlayerKey(msg)
		return a, nil
	}

	a.handleFeedKey(msg)
	return a, nil
}

// selectTab handles the tab keys. Tabs change without touching the overlay.
func (a *App) selectTab(msg tea.KeyMsg) bool {
	next := a.state.Tab
	switch {
	case key.Matches(msg, keys.NextTab):
		next = next.Shift(1)
	case key.Matches(msg, keys.PrevTab):
		next = next.Shift(-1)
	default:
		matched := false
		for i, b := range tabKeys {
			if key.Matches(msg, b) {
				next = feed.Tabs[i]
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if next != a.state.Tab {
		a.state = a.state.SetTab(next)
		a.cursor = 0
		a.syncCursor()
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindTabChange, Comp: "ui", Tab: next.String()})
		logging.Debug("tab changed", "tab", next.String())
	}
	return true
}

func (a *App) handlePlayerKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Close):
		id := a.state.Overlay.VideoID()
		a.state = a.state.CloseVideo()
		a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindVideoClose, Comp: "player", VideoID: id})

	case key.Matches(msg, keys.Next):
		a.step(1)

	case key.Matches(msg, keys.Prev):
		a.step(-1)

	case key.Matches(msg, keys.Pause):
		a.state = a.state.TogglePause()

	case key.Matches(msg, keys.Fav):
		a.toggleFavorite(a.state.Overlay.VideoID())
	}
}

// step moves the overlay through the feed. An empty feed is a no-op.
func (a *App) step(delta int) {
	if len(a.state.Feed()) == 0 {
		return
	}
	direction := "next"
	if delta > 0 {
		a.state = a.state.NextVideo()
	} else {
		a.state = a.state.PrevVideo()
		direction = "prev"
	}
	a.metrics.Step(direction)
	a.events.Emit(otel.Event{
		Level:   otel.LevelInfo,
		Kind:    otel.KindVideoStep,
		Comp:    "player",
		VideoID: a.state.Overlay.VideoID(),
		Msg:     direction,
	})
	a.syncCursor()
}

func (a *App) handleFeedKey(msg tea.KeyMsg) {
	items := a.state.Feed()
	if len(items) == 0 {
		return
	}
	cols := columnsFor(a.width)

	switch {
	case key.Matches(msg, keys.Left):
		a.moveCursor(-1, len(items))
	case key.Matches(msg, keys.Right):
		a.moveCursor(1, len(items))
	case key.Matches(msg, keys.Up):
		a.moveCursor(-cols, len(items))
	case key.Matches(msg, keys.Down):
		a.moveCursor(cols, len(items))

	case key.Matches(msg, keys.Open):
		a.openVideo(items[a.cursor])

	case key.Matches(msg, keys.Fav):
		a.toggleFavorite(items[a.cursor].ID)
	}
}

func (a *App) moveCursor(delta, n int) {
	c := a.cursor + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	a.cursor = c
}

func (a *App) openVideo(v catalog.Video) {
	a.state = a.state.OpenVideo(v.ID, a.sim.OpenBump(a.rand))
	a.metrics.ObserveOpen(string(v.Platform))
	a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindVideoOpen, Comp: "player", VideoID: v.ID, Tab: a.state.Tab.String()})
	logging.Debug("video opened", "id", v.ID, "tab", a.state.Tab.String())
}

func (a *App) toggleFavorite(id string) {
	if id == "" {
		return
	}
	a.state = a.state.ToggleFavorite(id)
	count := a.state.FavoriteCount()
	a.metrics.Favorite(count)
	a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindFavorite, Comp: "feed", VideoID: id, Count: count})
	a.clampCursor()
}

// syncCursor moves the card cursor onto the open video when it is in the feed.
func (a *App) syncCursor() {
	if idx, _ := a.state.Position(); idx >= 0 {
		a.cursor = idx
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.state.Feed())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.debugVisible {
		panel := debugOverlay(a.styles, a.ring, a.width, a.height-1)
		pad := a.height - 1 - lipgloss.Height(panel)
		if pad < 0 {
			pad = 0
		}
		return panel + strings.Repeat("\n", pad) + "\n" + debugStatusBar(a.styles, a.width)
	}

	header := a.renderHeader()
	tabs := a.renderTabs()
	footer := a.renderFooter()
	bodyH := a.height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(footer)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	switch {
	case a.state.Overlay.IsOpen():
		body = a.renderPlayer(bodyH)
	case a.state.Tab == feed.TabProfile:
		body = renderProfile(a.styles, a.state.FavoriteCount(), len(a.state.Videos), a.width, bodyH)
	default:
		title, sub := a.state.Tab.Heading()
		heading := a.styles.Heading.Render(title) + "\n" + a.styles.Subheading.Render(sub)
		grid := renderFeed(a.styles, a.state.Feed(), a.cursor, a.width, bodyH-lipgloss.Height(heading))
		body = lipgloss.JoinVertical(lipgloss.Left, heading, grid)
	}
	body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, tabs, footer)
}

func (a App) renderHeader() string {
	title := a.styles.Title.Render("VideoHub")
	icons := a.styles.HeaderIcon.Render(icon("Search")) + a.styles.HeaderIcon.Render(icon("Bell"))
	return spread(title, icons, a.width)
}

func (a App) renderTabs() string {
	var cells []string
	for i, t := range feed.Tabs {
		label := fmt.Sprintf("%d %s %s", i+1, icon(t.Icon()), t.Label())
		if t == a.state.Tab {
			cells = append(cells, a.styles.TabActive.Render(label))
		} else {
			cells = append(cells, a.styles.TabIdle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, bar)
}

func (a App) renderFooter() string {
	if a.state.Overlay.IsOpen() && !a.help.ShowAll {
		return a.help.View(playerKeys{keys})
	}
	return a.help.View(keys)
}

func (a App) renderPlayer(height int) string {
	v, ok := a.state.Current()
	if !ok {
		return ""
	}
	pos, n := a.state.Position()
	length, known := catalog.ParseDuration(v.Duration)
	elapsed := a.state.Overlay.Elapsed()

	frac := 0.0
	if known && length > 0 {
		frac = float64(elapsed) / float64(length)
	}
	return renderOverlay(a.styles, a.prog, overlayView{
		Video:    v,
		Position: pos,
		FeedLen:  n,
		Elapsed:  catalog.FormatClock(elapsed),
		Length:   v.Duration,
		Fraction: frac,
		Paused:   a.state.Overlay.Paused(),
	}, a.width, height)
}

// State returns the current application state (for testing).
func (a App) State() hub.State {
	return a.state
}

// Cursor returns the selected card index (for testing).
func (a App) Cursor() int {
	return a.cursor
}
