package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS task_entries (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	id              TEXT NOT NULL UNIQUE,
	legacy_id       INTEGER NOT NULL,
	user_id         INTEGER NOT NULL,
	user_name       TEXT NOT NULL DEFAULT '',
	cost_center     TEXT NOT NULL DEFAULT '',
	cost_center_key TEXT NOT NULL DEFAULT '',
	project         TEXT NOT NULL DEFAULT '',
	project_key     TEXT NOT NULL DEFAULT '',
	task_name       TEXT NOT NULL DEFAULT '',
	task_key        TEXT NOT NULL DEFAULT '',
	start_date      TEXT NOT NULL,
	end_date        TEXT NOT NULL,
	hours           REAL NOT NULL DEFAULT 0,
	detail          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_task_entries_date ON task_entries (start_date);
CREATE INDEX IF NOT EXISTS idx_task_entries_project ON task_entries (project_key, start_date);

CREATE TABLE IF NOT EXISTS assignments (
	seq            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id        INTEGER NOT NULL,
	user_name      TEXT NOT NULL,
	user_name_key  TEXT NOT NULL,
	project        TEXT NOT NULL,
	project_key    TEXT NOT NULL,
	leader_user_id INTEGER
);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens a SQLite database. ":memory:" keeps everything in process.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// New creates a SQLite-backed Repository and migrates its schema.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("timesheet/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("timesheet/repository/sqlite.%s", method)
}
