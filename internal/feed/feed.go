// Package feed projects the collection through the active tab.
// All functions are pure: []Video in, []Video out, input order preserved.
package feed

import (
	"strings"

	"github.com/abelbrown/videohub/internal/catalog"
)

// Tab selects which view of the collection is shown.
type Tab int

const (
	TabHome Tab = iota
	TabYouTube
	TabTikTok
	TabFavorites
	TabProfile
)

// Tabs lists every tab in navigation order.
var Tabs = []Tab{TabHome, TabYouTube, TabTikTok, TabFavorites, TabProfile}

var tabNames = map[Tab]string{
	TabHome:      "home",
	TabYouTube:   "youtube",
	TabTikTok:    "tiktok",
	TabFavorites: "favorites",
	TabProfile:   "profile",
}

// String returns the tab's identifier, e.g. "favorites".
func (t Tab) String() string {
	if s, ok := tabNames[t]; ok {
		return s
	}
	return "unknown"
}

// Label returns the navigation button text.
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Home"
	case TabYouTube:
		return "YouTube"
	case TabTikTok:
		return "TikTok"
	case TabFavorites:
		return "Favorites"
	case TabProfile:
		return "Profile"
	}
	return ""
}

// Icon returns the symbolic icon name shown next to the label.
func (t Tab) Icon() string {
	switch t {
	case TabHome:
		return "Home"
	case TabYouTube:
		return "Youtube"
	case TabTikTok:
		return "Music"
	case TabFavorites:
		return "Heart"
	case TabProfile:
		return "User"
	}
	return ""
}

// Heading returns the title and subtitle shown above a feed.
// The profile tab has no heading.
func (t Tab) Heading() (title, subtitle string) {
	switch t {
	case TabHome:
		return "Personalized picks", "Picked for you based on your watch history"
	case TabYouTube:
		return "YouTube videos", "The best of YouTube"
	case TabTikTok:
		return "TikTok videos", "Popular clips from TikTok"
	case TabFavorites:
		return "Favorites", "Your saved videos"
	}
	return "", ""
}

// Shift returns the tab delta positions away, wrapping at both ends.
func (t Tab) Shift(delta int) Tab {
	n := len(Tabs)
	return Tabs[((int(t)+delta)%n+n)%n]
}

// ParseTab resolves a tab identifier (case-insensitive).
func ParseTab(s string) (Tab, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for tab, name := range tabNames {
		if name == s {
			return tab, true
		}
	}
	return TabHome, false
}

// Filter returns the entries visible on tab, in collection order.
// The profile tab never shows a feed, so it is always empty.
func Filter(videos []catalog.Video, tab Tab) []catalog.Video {
	switch tab {
	case TabHome:
		return catalog.Clone(videos)
	case TabYouTube:
		return where(videos, func(v catalog.Video) bool { return v.Platform == catalog.PlatformYouTube })
	case TabTikTok:
		return where(videos, func(v catalog.Video) bool { return v.Platform == catalog.PlatformTikTok })
	case TabFavorites:
		return where(videos, func(v catalog.Video) bool { return v.Favorite })
	default:
		return []catalog.Video{}
	}
}

func where(videos []catalog.Video, keep func(catalog.Video) bool) []catalog.Video {
	result := make([]catalog.Video, 0, len(videos))
	for _, v := range videos {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
