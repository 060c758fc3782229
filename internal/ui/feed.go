package ui

import (
	"strings"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	cardGap       = 1
	minCardWidth  = 24
	titleMaxLines = 2
)

// columnsFor returns how many card columns fit width: 1, 2 or 3.
func columnsFor(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 80:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card for the given layout.
func cardWidth(width, cols int) int {
	w := (width - cardGap*(cols-1)) / cols
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// renderFeed renders videos as a grid of cards, scrolled so the selected
// card is visible. Pure function of its inputs.
func renderFeed(s Styles, videos []catalog.Video, cursor, width, height int) string {
	if len(videos) == 0 {
		return s.Empty.Render("Nothing here yet.")
	}

	cols := columnsFor(width)
	cw := cardWidth(width, cols)

	var rows []string
	for start := 0; start < len(videos); start += cols {
		end := start + cols
		if end > len(videos) {
			end = len(videos)
		}
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, renderCard(s, videos[i], i == cursor, cw))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rowHeight := lipgloss.Height(rows[0])
	visible := height / rowHeight
	if visible < 1 {
		visible = 1
	}
	offset := scrollOffset(cursor/cols, visible)
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows[offset:end]...)
}

// scrollOffset returns the first visible row such that row is on screen.
func scrollOffset(row, visible int) int {
	if row < 0 || visible <= 0 {
		return 0
	}
	if row >= visible {
		return row - visible + 1
	}
	return 0
}

// renderCard draws one video card of the given outer width.
func renderCard(s Styles, v catalog.Video, selected bool, width int) string {
	frame := s.Card
	if selected {
		frame = s.CardSelected
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	top := spread(platformBadge(s, v.Platform), s.Duration.Render(v.Duration), inner)

	var title []string
	for _, line := range clampLines(v.Title, inner, titleMaxLines) {
		title = append(title, s.CardTitle.Render(line))
	}

	views := icon("Eye") + " " + v.Views
	channel := runewidth.Truncate(v.Channel, inner-runewidth.StringWidth(views)-1, "…")
	meta := spread(s.CardMeta.Render(channel), s.CardMeta.Render(views), inner)

	heart := spread("", heartGlyph(s, v.Favorite), inner)

	body := lipgloss.JoinVertical(lipgloss.Left,
		top,
		strings.Join(title, "\n"),
		meta,
		heart,
	)
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(body)
}

func platformBadge(s Styles, p catalog.Platform) string {
	if p == catalog.PlatformYouTube {
		return s.BadgeYouTube.Render(icon("Youtube") + " " + p.Label())
	}
	return s.BadgeTikTok.Render(icon("Music") + " " + p.Label())
}

func heartGlyph(s Styles, favorite bool) string {
	if favorite {
		return s.HeartOn.Render(icon("Heart"))
	}
	return s.HeartOff.Render(icon("HeartO"))
}

// spread places left and right at opposite ends of a width-wide line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// clampLines wraps s to width and keeps at most max lines, marking
// the cut with an ellipsis. Always returns max lines so cards line up.
func clampLines(s string, width, max int) []string {
	lines := strings.Split(runewidth.Wrap(s, width), "\n")
	if len(lines) > max {
		last := strings.Join(lines[max-1:], " ")
		lines = append(lines[:max-1], runewidth.Truncate(last, width-1, "")+"…")
	}
	for i := range lines {
		lines[i] = runewidth.Truncate(lines[i], width, "…")
	}
	for len(lines) < max {
		lines = append(lines, "")
	}
	return lines
}
