package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorYouTube   = lipgloss.Color("196") // Red
	colorTikTok    = lipgloss.Color("86")  // Cyan
	colorWhite     = lipgloss.Color("255")
	colorDark      = lipgloss.Color("236")
)

// Styles holds every Lip Gloss style the app renders with.
// Injected through AppConfig so tests can render without color.
type Styles struct {
	// Header and navigation
	Title      lipgloss.Style
	HeaderIcon lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	BadgeYouTube lipgloss.Style
	BadgeTikTok  lipgloss.Style
	Duration     lipgloss.Style
	HeartOn      lipgloss.Style
	HeartOff     lipgloss.Style
	Empty        lipgloss.Style

	// Player overlay
	OverlayFrame lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayMeta  lipgloss.Style
	OverlayDesc  lipgloss.Style

	// Profile
	Avatar     lipgloss.Style
	StatValue  lipgloss.Style
	StatLabel  lipgloss.Style
	ProfileBox lipgloss.Style

	// Status bar and debug panel
	StatusBar     lipgloss.Style
	StatusBarKey  lipgloss.Style
	StatusBarText lipgloss.Style
	DebugPanel    lipgloss.Style
	DebugHeader   lipgloss.Style
}

// DefaultStyles returns the default dark look.
func DefaultStyles() Styles {
	s := Styles{}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	s.HeaderIcon = lipgloss.NewStyle().Foreground(colorSecondary).MarginLeft(2)
	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Background(colorPrimary).
		Padding(0, 1)
	s.TabIdle = lipgloss.NewStyle().Foreground(colorSecondary).Padding(0, 1)
	s.Heading = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	s.Subheading = lipgloss.NewStyle().Foreground(colorMuted).MarginBottom(1)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
	s.CardSelected = s.Card.BorderForeground(colorHighlight)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	s.CardMeta = lipgloss.NewStyle().Foreground(colorSecondary)
	s.BadgeYouTube = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Background(colorYouTube).
		Padding(0, 1)
	s.BadgeTikTok = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(colorTikTok).
		Padding(0, 1)
	s.Duration = lipgloss.NewStyle().Foreground(colorWhite).Background(colorDark).Padding(0, 1)
	s.HeartOn = lipgloss.NewStyle().Foreground(colorYouTube)
	s.HeartOff = lipgloss.NewStyle().Foreground(colorWhite)
	s.Empty = lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 2)

	s.OverlayFrame = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)
	s.OverlayTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	s.OverlayMeta = lipgloss.NewStyle().Foreground(colorSecondary)
	s.OverlayDesc = lipgloss.NewStyle().Foreground(colorWhite).Italic(true)

	s.Avatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Background(colorPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorHighlight).
		Padding(1, 3)
	s.StatValue = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	s.StatLabel = lipgloss.NewStyle().Foreground(colorMuted)
	s.ProfileBox = lipgloss.NewStyle().Padding(1, 4)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(colorWhite).
		Background(colorDark).
		Padding(0, 1)
	s.StatusBarKey = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	s.StatusBarText = lipgloss.NewStyle().Foreground(colorSecondary)
	s.DebugPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)
	s.DebugHeader = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)

	return s
}
