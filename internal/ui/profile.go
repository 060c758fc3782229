package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// hoursWatched is a fixed figure; no watch history is tracked.
const hoursWatched = 24

// renderProfile draws the read-only profile summary.
func renderProfile(s Styles, favorites, total, width, height int) string {
	stat := func(value int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			s.StatValue.Render(strconv.Itoa(value)),
			s.StatLabel.Render(label),
		)
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(favorites, "Favorites"),
		"      ",
		stat(total, "Watched"),
		"      ",
		stat(hoursWatched, "Hours"),
	)

	box := s.ProfileBox.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.Avatar.Render("US"),
		"",
		s.Heading.Render("Your profile"),
		s.Subheading.Render("user@example.com"),
		stats,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
