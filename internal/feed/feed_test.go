package feed

import (
	"testing"

	"github.com/abelbrown/videohub/internal/catalog"
)

func ids(videos []catalog.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	videos := catalog.Seed()

	tests := []struct {
		tab  Tab
		want []string
	}{
		{TabHome, []string{"1", "2", "3", "4", "5", "6"}},
		{TabYouTube, []string{"1", "4", "6"}},
		{TabTikTok, []string{"2", "3", "5"}},
		{TabFavorites, []string{"2", "4"}},
		{TabProfile, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tab.String(), func(t *testing.T) {
			got := ids(Filter(videos, tt.tab))
			if !equalIDs(got, tt.want) {
				t.Errorf("Filter(%s) = %v, want %v", tt.tab, got, tt.want)
			}
		})
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	videos := catalog.Seed()
	for _, tab := range Tabs {
		got := Filter(videos, tab)
		j := 0
		for _, v := range got {
			for j < len(videos) && videos[j].ID != v.ID {
				j++
			}
			if j == len(videos) {
				t.Fatalf("Filter(%s) is not an ordered subsequence: %v", tab, ids(got))
			}
			j++
		}
	}
}

func TestFilterFavoritesTracksToggles(t *testing.T) {
	videos := catalog.ToggleFavorite(catalog.Seed(), "2")
	videos = catalog.ToggleFavorite(videos, "5")

	got := ids(Filter(videos, TabFavorites))
	if !equalIDs(got, []string{"4", "5"}) {
		t.Errorf("favorites = %v, want [4 5]", got)
	}
	for _, v := range Filter(videos, TabFavorites) {
		if !v.Favorite {
			t.Errorf("non-favorite %s in favorites feed", v.ID)
		}
	}
}

func TestFilterHomeReturnsCopy(t *testing.T) {
	videos := catalog.Seed()
	got := Filter(videos, TabHome)
	got[0].Title = "changed"
	if videos[0].Title == "changed" {
		t.Error("home feed aliases the collection")
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, ok := ParseTab(tab.String())
		if !ok || got != tab {
			t.Errorf("ParseTab(%q) = %v, %v", tab.String(), got, ok)
		}
	}
	if got, ok := ParseTab(" Favorites "); !ok || got != TabFavorites {
		t.Errorf("ParseTab should be case-insensitive, got %v, %v", got, ok)
	}
	if _, ok := ParseTab("search"); ok {
		t.Error("ParseTab(search) should fail")
	}
}

func TestShift(t *testing.T) {
	if TabHome.Shift(-1) != TabProfile {
		t.Error("home.Shift(-1) should wrap to profile")
	}
	if TabProfile.Shift(1) != TabHome {
		t.Error("profile.Shift(1) should wrap to home")
	}
	if TabYouTube.Shift(2) != TabFavorites {
		t.Error("youtube.Shift(2) should be favorites")
	}
}

func TestHeading(t *testing.T) {
	for _, tab := range []Tab{TabHome, TabYouTube, TabTikTok, TabFavorites} {
		if title, sub := tab.Heading(); title == "" || sub == "" {
			t.Errorf("%s should have a heading", tab)
		}
	}
	if title, _ := TabProfile.Heading(); title != "" {
		t.Error("profile should have no heading")
	}
}
