// Package sqlite provides SQLite-based persistence for ChoreBoard: the
// event store (task completions, reading sessions, story chapters) and
// the child profile store. Uses WAL mode for concurrent reads and
// crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/choreboard.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "choreboard.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS households (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS children (
			id             TEXT PRIMARY KEY,
			household_id   TEXT NOT NULL,
			name           TEXT NOT NULL,
			current_streak INTEGER NOT NULL DEFAULT 0,
			total_points   INTEGER NOT NULL DEFAULT 0,
			created_at     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_children_household ON children(household_id)`,

		// Event store: append-only activity records
		`CREATE TABLE IF NOT EXISTS task_completions (
			id           TEXT PRIMARY KEY,
			child_id     TEXT NOT NULL,
			status       TEXT NOT NULL,
			completed_at INTEGER NOT NULL,
			points       INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_child ON task_completions(child_id, completed_at)`,

		`CREATE TABLE IF NOT EXISTS reading_sessions (
			id         TEXT PRIMARY KEY,
			child_id   TEXT NOT NULL,
			start_time INTEGER NOT NULL,
			end_time   INTEGER,
			words_read INTEGER NOT NULL DEFAULT 0,
			speed_wpm  REAL NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_child ON reading_sessions(child_id, start_time)`,

		`CREATE TABLE IF NOT EXISTS story_chapters (
			id          TEXT PRIMARY KEY,
			child_id    TEXT NOT NULL,
			is_read     BOOLEAN NOT NULL DEFAULT 0,
			world_theme TEXT NOT NULL DEFAULT '',
			created_at  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chapters_child ON story_chapters(child_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}
