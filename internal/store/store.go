// Package store persists log entries in a local sqlite database and serves
// day-scoped range queries over the created_at index. All operations work
// without network connectivity.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/foodlog/internal/datekey"
	"github.com/plateful/foodlog/internal/db"
	"github.com/plateful/foodlog/internal/model"
)

var (
	// ErrNotFound reports a read for an id the store does not hold.
	ErrNotFound = errors.New("entry not found")
	// ErrUnavailable reports that the backing database could not be
	// opened or written. Prior data is not corrupted by this failure.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the durable collection of log entries. A zero-value Store is not
// usable; construct with New. The store opens lazily on first use, or
// explicitly via Open, and stays open for the process lifetime.
type Store struct {
	path string
	db   *sql.DB
	log  zerolog.Logger
}

type Option func(*Store)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open transitions the store from unopened to opened, creating the schema if
// absent. Calling Open on an opened store is a no-op.
func (s *Store) Open() error {
	if s.db != nil {
		return nil
	}
	sqldb, err := db.Open(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.db = sqldb
	s.log.Debug().Str("path", s.path).Msg("store opened")
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	return s.Open()
}

// Put inserts or replaces the entry keyed by its id. When Put returns nil
// the entry is durable and visible to subsequent reads.
func (s *Store) Put(e model.LogEntry) error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO log_entries(id, name, food_id, calories, protein_g, carbs_g, fat_g, quantity, unit, created_at, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, e.ID, e.Name, e.FoodID, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.Quantity, e.Unit, e.CreatedAt.Format(time.RFC3339Nano), e.Notes)
	if err != nil {
		return fmt.Errorf("%w: put entry %s: %v", ErrUnavailable, e.ID, err)
	}
	s.log.Debug().Str("id", e.ID).Str("name", e.Name).Msg("entry stored")
	return nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *Store) Get(id string) (model.LogEntry, error) {
	if err := s.ensureOpen(); err != nil {
		return model.LogEntry{}, err
	}
	row := s.db.QueryRow(`
SELECT id, name, food_id, calories, protein_g, carbs_g, fat_g, quantity, unit, created_at, notes
FROM log_entries WHERE id = ?
`, id)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return model.LogEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("%w: get entry %s: %v", ErrUnavailable, id, err)
	}
	return e, nil
}

// Delete removes the entry with the given id. Deleting an absent id is not
// an error.
func (s *Store) Delete(id string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM log_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete entry %s: %v", ErrUnavailable, id, err)
	}
	s.log.Debug().Str("id", id).Msg("entry deleted")
	return nil
}

// ListByDay returns the entries whose created_at falls within the keyed
// local day, ordered by creation time ascending. The query is a range scan
// over the created_at index, so cost tracks the day's entry count rather
// than total history size.
func (s *Store) ListByDay(key string) ([]model.LogEntry, error) {
	start, err := datekey.Start(key)
	if err != nil {
		return nil, err
	}
	end, err := datekey.End(key)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
SELECT id, name, food_id, calories, protein_g, carbs_g, fat_g, quantity, unit, created_at, notes
FROM log_entries
WHERE created_at >= ? AND created_at < ?
ORDER BY created_at ASC, rowid ASC
`, start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("%w: list entries for %s: %v", ErrUnavailable, key, err)
	}
	defer rows.Close()

	entries := make([]model.LogEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			// One damaged row must not hide the rest of the day.
			s.log.Warn().Err(err).Str("day", key).Msg("skipping unreadable entry row")
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate entries for %s: %v", ErrUnavailable, key, err)
	}
	return entries, nil
}

// Count returns the total number of stored entries.
func (s *Store) Count() (int, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM log_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count entries: %v", ErrUnavailable, err)
	}
	return n, nil
}

// BadTimestamps counts rows whose created_at no longer parses. Such rows are
// invisible to day queries; the doctor surfaces them.
func (s *Store) BadTimestamps() (int, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	rows, err := s.db.Query(`SELECT id, created_at FROM log_entries`)
	if err != nil {
		return 0, fmt.Errorf("%w: scan timestamps: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	bad := 0
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return 0, fmt.Errorf("%w: scan timestamp row: %v", ErrUnavailable, err)
		}
		if _, err := time.Parse(time.RFC3339Nano, raw); err != nil {
			bad++
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: iterate timestamp rows: %v", ErrUnavailable, err)
	}
	return bad, nil
}

// FoodIDs returns the distinct non-empty catalogue references held by stored
// entries.
func (s *Store) FoodIDs() ([]string, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`SELECT DISTINCT food_id FROM log_entries WHERE food_id != '' ORDER BY food_id`)
	if err != nil {
		return nil, fmt.Errorf("%w: list food ids: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scan food id: %v", ErrUnavailable, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate food ids: %v", ErrUnavailable, err)
	}
	return ids, nil
}

func scanEntry(scan func(dest ...any) error) (model.LogEntry, error) {
	var e model.LogEntry
	var createdAtRaw string
	if err := scan(&e.ID, &e.Name, &e.FoodID, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.Quantity, &e.Unit, &createdAtRaw, &e.Notes); err != nil {
		return model.LogEntry{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtRaw)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("parse created_at for entry %s: %w", e.ID, err)
	}
	e.CreatedAt = createdAt
	return e, nil
}
