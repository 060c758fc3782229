package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/abelbrown/videohub/internal/config"
	"github.com/abelbrown/videohub/internal/otel"
	"github.com/abelbrown/videohub/internal/store"
	"github.com/dustin/go-humanize"
)

func runStats(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", config.EventLogPath(), "Event log JSONL file")
	dbPath := fs.String("db", ":memory:", "SQLite archive; a file path keeps imported events across runs")
	session := fs.String("session", "", "Restrict event counts to one session ID")
	top := fs.Int("top", 5, "Number of most-opened videos to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *top < 0 {
		return fmt.Errorf("-top must be >= 0, got %d", *top)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	inserted, skipped, err := st.ImportJSONL(f)
	f.Close()
	if err != nil {
		return err
	}

	total, err := st.CountEvents()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d new events (%d malformed lines skipped), %d archived\n\n", inserted, skipped, total)

	sessions, err := st.Sessions()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sessions: %d\n", len(sessions))
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-12s %s  %5d events  %s\n",
			shortID(s.ID), s.First.Local().Format("2006-01-02 15:04:05"), s.Events,
			s.Last.Sub(s.First).Round(time.Second))
	}

	counts, err := st.KindCounts(*session)
	if err != nil {
		return err
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	fmt.Fprintf(out, "\nEvents by kind:\n")
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-22s %s\n", k, humanize.Comma(int64(counts[otel.EventKind(k)])))
	}

	if *top > 0 {
		opened, err := st.TopVideos(otel.KindVideoOpen, *top)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nMost opened:\n")
		if len(opened) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for _, vc := range opened {
			fmt.Fprintf(out, "  %-4s %d\n", vc.VideoID, vc.Count)
		}
	}
	return nil
}

func shortID(id string) string {
	if id == "" {
		return "(none)"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
