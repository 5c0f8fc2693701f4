package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plateful/foodlog/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "foodlog.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	var entriesTableCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'log_entries'`).Scan(&entriesTableCount); err != nil {
		t.Fatalf("check log_entries table: %v", err)
	}
	if entriesTableCount != 1 {
		t.Fatalf("expected log_entries table to exist")
	}

	var createdAtIndexCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'index' AND name = 'idx_log_entries_created_at'`).Scan(&createdAtIndexCount); err != nil {
		t.Fatalf("check created_at index: %v", err)
	}
	if createdAtIndexCount != 1 {
		t.Fatalf("expected idx_log_entries_created_at index to exist")
	}

	var notesColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('log_entries') WHERE name = 'notes'`).Scan(&notesColCount); err != nil {
		t.Fatalf("check notes column: %v", err)
	}
	if notesColCount != 1 {
		t.Fatalf("expected notes column in log_entries table")
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}
