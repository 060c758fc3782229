// Package sim fakes audience activity by inflating view counts.
//
// Two rules exist: opening a video adds a small bump, and every tick each
// video independently has a chance of a larger bump. Randomness comes from
// an injected Rand so tests can pin the outcome.
package sim

import (
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
)

// Rand is the subset of *math/rand.Rand the simulator needs.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Settings tune the simulator.
type Settings struct {
	Interval    time.Duration // time between ticks
	Probability float64       // chance each video is bumped on a tick
	TickMin     int64         // inclusive bounds of a tick bump
	TickMax     int64
	OpenMin     int64 // inclusive bounds of an open bump
	OpenMax     int64
}

// DefaultSettings returns a 3s tick, 30% chance, [50,149] per tick and [10,59] per open.
func DefaultSettings() Settings {
	return Settings{
		Interval:    3 * time.Second,
		Probability: 0.3,
		TickMin:     50,
		TickMax:     149,
		OpenMin:     10,
		OpenMax:     59,
	}
}

// OpenBump draws the increment applied when a video is opened.
func (s Settings) OpenBump(r Rand) int64 {
	return between(r, s.OpenMin, s.OpenMax)
}

// TickBump draws the increment applied to a video selected on a tick.
func (s Settings) TickBump(r Rand) int64 {
	return between(r, s.TickMin, s.TickMax)
}

// Tick returns a new collection with each entry independently bumped with
// probability s.Probability, plus the number of entries bumped and the total
// views added. The input is not modified.
func (s Settings) Tick(videos []catalog.Video, r Rand) ([]catalog.Video, int, int64) {
	out := catalog.Clone(videos)
	bumped := 0
	var added int64
	for i := range out {
		if r.Float64() >= s.Probability {
			continue
		}
		delta := s.TickBump(r)
		out[i].Views = catalog.BumpViews(out[i].Views, delta)
		bumped++
		added += delta
	}
	return out, bumped, added
}

func between(r Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(r.Intn(int(hi-lo+1)))
}
