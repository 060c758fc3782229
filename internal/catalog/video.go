// Package catalog holds the video collection: the entity, its fixed seed,
// and the small set of mutations the collection supports.
//
// Collections are plain slices. Every mutating helper returns a new slice and
// leaves its input untouched, so callers can swap the whole collection in one
// assignment.
package catalog

// Platform is the source category of a video.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
)

// Label returns the display name used on badges.
func (p Platform) Label() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformTikTok:
		return "TikTok"
	default:
		return string(p)
	}
}

// Video is a single entry in the collection.
type Video struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	Thumbnail   string   `json:"thumbnail"` // opaque URI, never fetched
	MediaURL    string   `json:"media_url"` // opaque URI, never fetched
	Views       string   `json:"views"`     // display form: "920", "850K", "1.2M"
	Duration    string   `json:"duration"`  // display form: "0:45", "10:24"
	Platform    Platform `json:"platform"`
	Favorite    bool     `json:"favorite"`
	Description string   `json:"description,omitempty"`
}

// IndexOf returns the position of id in videos, or -1.
func IndexOf(videos []Video, id string) int {
	for i := range videos {
		if videos[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the video with the given id.
func Find(videos []Video, id string) (Video, bool) {
	if i := IndexOf(videos, id); i >= 0 {
		return videos[i], true
	}
	return Video{}, false
}

// ToggleFavorite flips the favorite flag of the entry with the given id.
// An unknown id returns an unchanged copy.
func ToggleFavorite(videos []Video, id string) []Video {
	out := Clone(videos)
	if i := IndexOf(out, id); i >= 0 {
		out[i].Favorite = !out[i].Favorite
	}
	return out
}

// AddViews adds delta to the view count of the entry with the given id.
func AddViews(videos []Video, id string, delta int64) []Video {
	out := Clone(videos)
	if i := IndexOf(out, id); i >= 0 {
		out[i].Views = BumpViews(out[i].Views, delta)
	}
	return out
}

// CountFavorites returns how many entries are marked favorite.
func CountFavorites(videos []Video) int {
	n := 0
	for _, v := range videos {
		if v.Favorite {
			n++
		}
	}
	return n
}

// Clone returns a shallow copy of videos. Video holds no reference types,
// so the copy is fully independent.
func Clone(videos []Video) []Video {
	if videos == nil {
		return nil
	}
	out := make([]Video, len(videos))
	copy(out, videos)
	return out
}
