// Package hub holds the application state and its transitions.
//
// State is a value. Every transition returns a new State and never mutates
// the receiver's collection, so one event always replaces the state as a
// whole. Feed membership and overlay position are derived from the canonical
// collection on demand rather than cached.
package hub

import (
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/abelbrown/videohub/internal/feed"
	"github.com/abelbrown/videohub/internal/player"
	"github.com/abelbrown/videohub/internal/sim"
)

// State is everything the interface renders.
type State struct {
	Videos  []catalog.Video
	Tab     feed.Tab
	Overlay player.Overlay
}

// New creates a state over a private copy of videos.
func New(videos []catalog.Video, tab feed.Tab) State {
	return State{Videos: catalog.Clone(videos), Tab: tab}
}

// Feed returns the entries visible on the active tab.
func (s State) Feed() []catalog.Video {
	return feed.Filter(s.Videos, s.Tab)
}

// SetTab switches tabs. The overlay is left as it is.
func (s State) SetTab(t feed.Tab) State {
	s.Tab = t
	return s
}

// ToggleFavorite flips the favorite flag on id. The overlay resolves its
// video from the collection, so it sees the change immediately.
func (s State) ToggleFavorite(id string) State {
	s.Videos = catalog.ToggleFavorite(s.Videos, id)
	return s
}

// OpenVideo opens id at its position in the current feed and adds bump
// views to it. Unknown ids are ignored.
func (s State) OpenVideo(id string, bump int64) State {
	if catalog.IndexOf(s.Videos, id) < 0 {
		return s
	}
	s.Overlay = s.Overlay.Open(s.Feed(), id)
	s.Videos = catalog.AddViews(s.Videos, id, bump)
	return s
}

// CloseVideo closes the overlay.
func (s State) CloseVideo() State {
	s.Overlay = s.Overlay.Close()
	return s
}

// NextVideo steps the overlay forward through the current feed.
func (s State) NextVideo() State {
	s.Overlay = s.Overlay.Next(s.Feed())
	return s
}

// PrevVideo steps the overlay backward through the current feed.
func (s State) PrevVideo() State {
	s.Overlay = s.Overlay.Prev(s.Feed())
	return s
}

// TogglePause stops or resumes playback.
func (s State) TogglePause() State {
	s.Overlay = s.Overlay.TogglePause()
	return s
}

// Current returns the open video as it is in the collection now.
func (s State) Current() (catalog.Video, bool) {
	if !s.Overlay.IsOpen() {
		return catalog.Video{}, false
	}
	return catalog.Find(s.Videos, s.Overlay.VideoID())
}

// Position returns the open video's 0-based index in the current feed and
// the feed length. The index is -1 when the video is not in the feed.
func (s State) Position() (int, int) {
	f := s.Feed()
	if !s.Overlay.IsOpen() {
		return -1, len(f)
	}
	return catalog.IndexOf(f, s.Overlay.VideoID()), len(f)
}

// FavoriteCount returns the number of favorites in the collection.
func (s State) FavoriteCount() int {
	return catalog.CountFavorites(s.Videos)
}

// Tick applies one simulator tick and reports how many entries changed and
// how many views were added.
func (s State) Tick(set sim.Settings, r sim.Rand) (State, int, int64) {
	videos, bumped, added := set.Tick(s.Videos, r)
	s.Videos = videos
	return s, bumped, added
}

// Playback outcomes reported by AdvancePlayback.
type Playback int

const (
	PlaybackIdle     Playback = iota // nothing open, paused, or still playing
	PlaybackAdvanced                 // medium ended and the next video started
	PlaybackEnded                    // medium ended and playback stopped
)

// AdvancePlayback moves the playback clock of the open video by d. When the
// medium ends it behaves like NextVideo if autoAdvance is set; with nowhere
// to go (auto-advance off, or an empty feed) playback stalls at the end.
func (s State) AdvancePlayback(d time.Duration, autoAdvance bool) (State, Playback) {
	cur, ok := s.Current()
	if !ok {
		return s, PlaybackIdle
	}
	length, _ := catalog.ParseDuration(cur.Duration)

	o, ended := s.Overlay.Advance(d, length)
	s.Overlay = o
	if !ended {
		return s, PlaybackIdle
	}

	if autoAdvance && len(s.Feed()) > 0 {
		return s.NextVideo(), PlaybackAdvanced
	}
	s.Overlay = s.Overlay.Stall(length)
	return s, PlaybackEnded
}
