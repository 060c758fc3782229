package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abelbrown/videohub/internal/otel"
)

// importBatch is how many events are written per transaction.
const importBatch = 500

// ImportJSONL reads an otel JSONL stream and stores every well-formed line.
// Malformed lines are counted and skipped. Returns rows inserted and lines skipped.
func (s *Store) ImportJSONL(r io.Reader) (inserted, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	// Allow large lines (some events may have big Extra maps)
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)

	batch := make([]otel.Event, 0, importBatch)
	flush := func() error {
		n, err := s.SaveEvents(batch)
		inserted += n
		batch = batch[:0]
		return err
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev otel.Event
		if json.Unmarshal(line, &ev) != nil || ev.Kind == "" {
			skipped++
			continue
		}
		batch = append(batch, ev)
		if len(batch) == importBatch {
			if err := flush(); err != nil {
				return inserted, skipped, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return inserted, skipped, fmt.Errorf("read event log: %w", err)
	}
	if err := flush(); err != nil {
		return inserted, skipped, err
	}
	return inserted, skipped, nil
}
