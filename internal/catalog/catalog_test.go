package catalog

import (
	"regexp"
	"testing"
)

var viewsPattern = regexp.MustCompile(`^(\d+|\d+(\.\d)?K|\d+(\.\d)?M)$`)

func TestSeedInvariants(t *testing.T) {
	videos := Seed()
	if len(videos) != 6 {
		t.Fatalf("expected 6 seed videos, got %d", len(videos))
	}

	seen := make(map[string]bool)
	for _, v := range videos {
		if seen[v.ID] {
			t.Errorf("duplicate id %q", v.ID)
		}
		seen[v.ID] = true

		if !viewsPattern.MatchString(v.Views) {
			t.Errorf("video %s: views %q not in display form", v.ID, v.Views)
		}
		if v.Platform != PlatformYouTube && v.Platform != PlatformTikTok {
			t.Errorf("video %s: unknown platform %q", v.ID, v.Platform)
		}
		if _, ok := ParseDuration(v.Duration); !ok {
			t.Errorf("video %s: duration %q does not parse", v.ID, v.Duration)
		}
		if v.MediaURL == "" || v.Description == "" {
			t.Errorf("video %s: missing media url or description", v.ID)
		}
	}
}

func TestSeedReturnsFreshSlice(t *testing.T) {
	a := Seed()
	a[0].Favorite = !a[0].Favorite
	b := Seed()
	if b[0].Favorite == a[0].Favorite {
		t.Error("Seed should not share state between calls")
	}
}

func TestToggleFavoriteInvolution(t *testing.T) {
	videos := Seed()
	for _, v := range videos {
		once := ToggleFavorite(videos, v.ID)
		got, _ := Find(once, v.ID)
		if got.Favorite == v.Favorite {
			t.Errorf("toggle %s: favorite unchanged", v.ID)
		}

		twice := ToggleFavorite(once, v.ID)
		got, _ = Find(twice, v.ID)
		if got.Favorite != v.Favorite {
			t.Errorf("toggle twice %s: favorite = %v, want %v", v.ID, got.Favorite, v.Favorite)
		}
	}
}

func TestToggleFavoriteDoesNotMutateInput(t *testing.T) {
	videos := Seed()
	_ = ToggleFavorite(videos, "1")
	if videos[0].Favorite {
		t.Error("input collection was mutated")
	}
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	videos := Seed()
	out := ToggleFavorite(videos, "missing")
	if len(out) != len(videos) {
		t.Fatalf("length changed: %d vs %d", len(out), len(videos))
	}
	for i := range videos {
		if out[i] != videos[i] {
			t.Errorf("entry %d changed on unknown id", i)
		}
	}
}

func TestAddViews(t *testing.T) {
	videos := Seed()
	out := AddViews(videos, "6", 50_000)
	v, _ := Find(out, "6")
	if v.Views != "970K" {
		t.Errorf("views = %q, want 970K", v.Views)
	}
	if videos[5].Views != "920K" {
		t.Error("input collection was mutated")
	}
}

func TestCountFavorites(t *testing.T) {
	if got := CountFavorites(Seed()); got != 2 {
		t.Errorf("CountFavorites(seed) = %d, want 2", got)
	}
	if got := CountFavorites(nil); got != 0 {
		t.Errorf("CountFavorites(nil) = %d, want 0", got)
	}
}

func TestPlatformLabel(t *testing.T) {
	if PlatformYouTube.Label() != "YouTube" || PlatformTikTok.Label() != "TikTok" {
		t.Error("unexpected platform labels")
	}
}
