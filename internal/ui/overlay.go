package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// overlayView is what the player panel needs to draw one frame.
type overlayView struct {
	Video    catalog.Video
	Position int // 0-based feed index, -1 when the video left the feed
	FeedLen  int
	Elapsed  string
	Length   string
	Fraction float64
	Paused   bool
}

// positionLabel renders "i/n", or "–/n" when the video is not in the feed.
func (o overlayView) positionLabel() string {
	if o.Position < 0 {
		return fmt.Sprintf("–/%d", o.FeedLen)
	}
	return fmt.Sprintf("%d/%d", o.Position+1, o.FeedLen)
}

// renderOverlay draws the full-screen player panel.
func renderOverlay(s Styles, prog progress.Model, o overlayView, width, height int) string {
	frameW := width - s.OverlayFrame.GetHorizontalFrameSize()
	if frameW < 20 {
		frameW = 20
	}

	v := o.Video
	top := spread(platformBadge(s, v.Platform), s.OverlayMeta.Render(o.positionLabel()), frameW)

	state := icon("Play")
	if o.Paused {
		state = icon("Pause")
	}

	barW := frameW - 22
	if barW < 10 {
		barW = 10
	}
	prog.Width = barW
	clock := fmt.Sprintf("%s / %s", o.Elapsed, o.Length)
	bar := fmt.Sprintf("%s %s  %s", state, prog.ViewAs(o.Fraction), clock)

	exact := humanize.Comma(catalog.ParseViews(v.Views))
	lines := []string{
		top,
		"",
		s.OverlayTitle.Render(runewidth.Truncate(v.Title, frameW, "…")),
		s.OverlayMeta.Render(v.Channel),
		"",
		bar,
		"",
		spread(
			s.OverlayMeta.Render(fmt.Sprintf("%s %s views (%s)", icon("Eye"), exact, v.Views)),
			heartGlyph(s, v.Favorite),
			frameW,
		),
	}
	if v.Description != "" {
		lines = append(lines, "", s.OverlayDesc.Width(frameW).Render(v.Description))
	}
	lines = append(lines,
		"",
		s.OverlayMeta.Render(runewidth.Truncate("media: "+v.MediaURL, frameW, "…")),
		s.OverlayMeta.Render(runewidth.Truncate("thumb: "+v.Thumbnail, frameW, "…")),
	)

	body := strings.Join(lines, "\n")
	panel := s.OverlayFrame.Width(frameW + s.OverlayFrame.GetHorizontalPadding()).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
