// Package player models the full-screen player overlay.
//
// The overlay is either Closed or Open on one video. It stores the open
// video's ID, not a copy of the video, and recomputes the position within
// the current feed whenever it steps. The recorded index is only a hint for
// the case where the open video has left the feed.
package player

import (
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
)

// Overlay is the player state. The zero value is Closed.
type Overlay struct {
	open    bool
	videoID string
	index   int // feed position at the last open or step

	elapsed time.Duration
	paused  bool
}

// IsOpen reports whether a video is selected.
func (o Overlay) IsOpen() bool { return o.open }

// VideoID returns the open video's ID, or "" when closed.
func (o Overlay) VideoID() string { return o.videoID }

// Index returns the feed position recorded at the last open or step.
func (o Overlay) Index() int { return o.index }

// Elapsed returns how far playback has progressed.
func (o Overlay) Elapsed() time.Duration { return o.elapsed }

// Paused reports whether the playback clock is stopped.
func (o Overlay) Paused() bool { return o.paused }

// Open selects id and records its position within feed. Opening a video
// that isn't in feed still opens it, with the position hint at 0.
func (o Overlay) Open(feed []catalog.Video, id string) Overlay {
	idx := catalog.IndexOf(feed, id)
	if idx < 0 {
		idx = 0
	}
	return Overlay{open: true, videoID: id, index: idx}
}

// Close clears the selection.
func (o Overlay) Close() Overlay {
	return Overlay{}
}

// Next steps forward through feed, wrapping from the last entry to the first.
func (o Overlay) Next(feed []catalog.Video) Overlay {
	return o.step(feed, 1)
}

// Prev steps backward through feed, wrapping from the first entry to the last.
func (o Overlay) Prev(feed []catalog.Video) Overlay {
	return o.step(feed, -1)
}

// step is a no-op when closed or when feed is empty.
func (o Overlay) step(feed []catalog.Video, delta int) Overlay {
	n := len(feed)
	if !o.open || n == 0 {
		return o
	}

	var next int
	if pos := catalog.IndexOf(feed, o.videoID); pos >= 0 {
		next = mod(pos+delta, n)
	} else if delta > 0 {
		// The open video left the feed; its old slot now holds the entry after it.
		next = mod(o.index, n)
	} else {
		next = mod(o.index-1, n)
	}

	return Overlay{open: true, videoID: feed[next].ID, index: next}
}

// TogglePause stops or resumes the playback clock.
func (o Overlay) TogglePause() Overlay {
	if o.open {
		o.paused = !o.paused
	}
	return o
}

// Advance moves the playback clock by d. It reports true when playback
// reaches length, the end of the medium. A non-positive length never ends.
func (o Overlay) Advance(d, length time.Duration) (Overlay, bool) {
	if !o.open || o.paused || d <= 0 {
		return o, false
	}
	o.elapsed += d
	if length > 0 && o.elapsed >= length {
		o.elapsed = length
		return o, true
	}
	return o, false
}

// Stall pins playback at the end of a medium and pauses it.
func (o Overlay) Stall(length time.Duration) Overlay {
	if o.open {
		o.elapsed = length
		o.paused = true
	}
	return o
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
