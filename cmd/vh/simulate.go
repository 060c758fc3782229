package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/abelbrown/videohub/internal/catalog"
	"github.com/abelbrown/videohub/internal/feed"
	"github.com/abelbrown/videohub/internal/hub"
	"github.com/abelbrown/videohub/internal/sim"
	"github.com/dustin/go-humanize"
)

func runSimulate(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	ticks := fs.Int("ticks", 20, "Number of simulator ticks to apply")
	seed := fs.Int64("seed", 1, "Random seed")
	opens := fs.String("open", "", "Comma-separated video IDs to open before ticking")
	prob := fs.Float64("p", sim.DefaultSettings().Probability, "Per-video bump probability per tick")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ticks < 0 {
		return fmt.Errorf("ticks must be >= 0, got %d", *ticks)
	}
	if *prob < 0 || *prob > 1 {
		return fmt.Errorf("p must be within [0,1], got %v", *prob)
	}

	set := sim.DefaultSettings()
	set.Probability = *prob
	r := rand.New(rand.NewSource(*seed))

	st := hub.New(catalog.Seed(), feed.TabHome)
	before := st.Videos

	for _, id := range splitIDs(*opens) {
		if catalog.IndexOf(st.Videos, id) < 0 {
			return fmt.Errorf("unknown video %q", id)
		}
		st = st.OpenVideo(id, set.OpenBump(r)).CloseVideo()
	}

	var bumped int
	var added int64
	for i := 0; i < *ticks; i++ {
		var b int
		var a int64
		st, b, a = st.Tick(set, r)
		bumped += b
		added += a
	}

	simulated := time.Duration(*ticks) * set.Interval
	fmt.Fprintf(w, "%d ticks (%s of wall time), %d bumps, %s views added\n\n",
		*ticks, simulated, bumped, humanize.Comma(added))
	for i, v := range st.Videos {
		fmt.Fprintf(w, "  %-3s %7s -> %-7s %s\n", v.ID, before[i].Views, v.Views, pad(v.Title, 28))
	}
	return nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
