package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/abelbrown/videohub/internal/feed"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

func runCatalog(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	tabName := fs.String("tab", "home", "Tab to project: home, youtube, tiktok, favorites, profile")
	asJSON := fs.Bool("json", false, "Output JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tab, ok := feed.ParseTab(*tabName)
	if !ok {
		return fmt.Errorf("unknown tab %q", *tabName)
	}
	videos := feed.Filter(catalog.Seed(), tab)

	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(videos)
	}

	title, sub := tab.Heading()
	if title != "" {
		fmt.Fprintf(w, "%s: %s\n\n", title, sub)
	}
	printTable(w, videos)
	return nil
}

// printTable writes one aligned row per video.
func printTable(w io.Writer, videos []catalog.Video) {
	for _, v := range videos {
		fav := " "
		if v.Favorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s %-3s %-8s %s %s %6s %7s %12s\n",
			fav,
			v.ID,
			v.Platform.Label(),
			pad(v.Title, 28),
			pad(v.Channel, 18),
			v.Duration,
			v.Views,
			humanize.Comma(catalog.ParseViews(v.Views)),
		)
	}
	fmt.Fprintf(w, "\n%d videos, %d favorites\n", len(videos), catalog.CountFavorites(videos))
}

// pad truncates or right-pads s to exactly width terminal cells.
func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}
