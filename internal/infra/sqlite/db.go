// Package sqlite provides SQLite-based persistent storage for IdeaForge:
// the completed-work history, the unlock ledgers, and the notification
// log. Uses WAL mode for concurrent reads and crash-safe writes.
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

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
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
		// Completed-work history. Timestamps are stored as millis — the
		// sole source of truth for all calendar aggregation. Tag sets are
		// JSON arrays.
		`CREATE TABLE IF NOT EXISTS completed_work (
			id              TEXT PRIMARY KEY,
			work_id         INTEGER NOT NULL,
			completed_at_ms INTEGER NOT NULL,
			tier            TEXT NOT NULL,
			languages       TEXT NOT NULL DEFAULT '[]',
			frameworks      TEXT NOT NULL DEFAULT '[]',
			datastores      TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_work_completed ON completed_work(completed_at_ms)`,

		// Unlock ledgers for both scopes. Append-only: rows are inserted
		// with INSERT OR IGNORE and never deleted by the engine.
		`CREATE TABLE IF NOT EXISTS unlocks (
			scope        TEXT NOT NULL,
			criterion_id TEXT NOT NULL,
			unlocked_at  INTEGER NOT NULL,
			PRIMARY KEY (scope, criterion_id)
		)`,

		// Notification log (rate-limited unlock announcements)
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			type       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_created ON notifications(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
