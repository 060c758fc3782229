package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseViews converts a display view count back to a number.
// "K" multiplies by 1,000 and "M" by 1,000,000; anything unparseable is 0.
//
// The display form is lossy, so ParseViews(FormatViews(n)) only approximates n.
func ParseViews(s string) int64 {
	s = strings.TrimSpace(s)
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		mult = 1_000_000
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		mult = 1_000
		s = strings.TrimSuffix(s, "K")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	return int64(math.Round(f * mult))
}

// FormatViews renders a view count: one decimal with "M" from a million up,
// no decimals with "K" from a thousand up, the plain integer below that.
func FormatViews(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// BumpViews adds delta to a display view count and re-formats it.
func BumpViews(views string, delta int64) string {
	return FormatViews(ParseViews(views) + delta)
}

// ParseDuration parses "m:ss" or "h:mm:ss".
func ParseDuration(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	var total int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		// Everything after the leading field is base 60.
		if i > 0 && n >= 60 {
			return 0, false
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, true
}

// FormatClock renders d the way durations are displayed on cards.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
