// Package store archives event log records in SQLite for offline queries.
//
// Only observability events are stored. The video collection is never
// written anywhere; every run starts from the seed.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abelbrown/videohub/internal/otel"
	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Session summarizes one run of the TUI.
type Session struct {
	ID     string
	First  time.Time
	Last   time.Time
	Events int
}

// VideoCount is a per-video tally for one event kind.
type VideoCount struct {
	VideoID string
	Count   int
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so all connections in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
// Timestamps are unix nanoseconds so MIN/MAX aggregate without parsing.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		t INTEGER NOT NULL,
		level TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		comp TEXT NOT NULL DEFAULT '',
		session_id TEXT NOT NULL DEFAULT '',
		video_id TEXT NOT NULL DEFAULT '',
		tab TEXT NOT NULL DEFAULT '',
		dur_ms REAL NOT NULL DEFAULT 0,
		count INTEGER NOT NULL DEFAULT 0,
		err TEXT NOT NULL DEFAULT '',
		msg TEXT NOT NULL DEFAULT '',
		UNIQUE(session_id, t, kind, comp, video_id, msg)
	);

	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveEvents stores events, returning count of new rows inserted.
// Re-importing the same log is harmless: duplicates are ignored.
// Thread-safe: acquires write lock.
func (s *Store) SaveEvents(events []otel.Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(events) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO events (
			t, level, kind, comp, session_id, video_id, tab, dur_ms, count, err, msg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	newCount := 0
	for _, ev := range events {
		durMs := ev.DurMs
		if ev.Dur > 0 {
			durMs = float64(ev.Dur) / float64(time.Millisecond)
		}
		result, err := stmt.Exec(
			ev.Time.UnixNano(),
			string(ev.Level),
			string(ev.Kind),
			ev.Comp,
			ev.SessionID,
			ev.VideoID,
			ev.Tab,
			durMs,
			ev.Count,
			ev.Err,
			ev.Msg,
		)
		if err != nil {
			return newCount, fmt.Errorf("insert event: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return newCount, err
		}
		if affected > 0 {
			newCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newCount, nil
}

// CountEvents returns the number of stored events.
// Thread-safe: acquires read lock.
func (s *Store) CountEvents() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// Sessions returns every session, oldest first.
// Thread-safe: acquires read lock.
func (s *Store) Sessions() ([]Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT session_id, MIN(t), MAX(t), COUNT(*)
		FROM events
		GROUP BY session_id
		ORDER BY MIN(t)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var first, last int64
		if err := rows.Scan(&sess.ID, &first, &last, &sess.Events); err != nil {
			return nil, err
		}
		sess.First = time.Unix(0, first)
		sess.Last = time.Unix(0, last)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// KindCounts tallies events by kind. An empty session counts every session.
// Thread-safe: acquires read lock.
func (s *Store) KindCounts(session string) (map[otel.EventKind]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT kind, COUNT(*) FROM events GROUP BY kind"
	var args []any
	if session != "" {
		query = "SELECT kind, COUNT(*) FROM events WHERE session_id = ? GROUP BY kind"
		args = []any{session}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[otel.EventKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[otel.EventKind(kind)] = n
	}
	return counts, rows.Err()
}

// TopVideos returns the videos with the most events of kind, busiest first.
// Ties are broken by video ID.
// Thread-safe: acquires read lock.
func (s *Store) TopVideos(kind otel.EventKind, limit int) ([]VideoCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT video_id, COUNT(*) AS n
		FROM events
		WHERE kind = ? AND video_id != ''
		GROUP BY video_id
		ORDER BY n DESC, video_id
		LIMIT ?
	`, string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VideoCount
	for rows.Next() {
		var vc VideoCount
		if err := rows.Scan(&vc.VideoID, &vc.Count); err != nil {
			return nil, err
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}
