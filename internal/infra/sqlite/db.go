// Package sqlite provides SQLite-based persistent storage for bottled.
// Uses WAL mode for concurrent reads and crash-safe writes.
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
	// modernc applies _pragma to every new connection; the attachments
	// cascade depends on foreign_keys being on.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

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
		`CREATE TABLE IF NOT EXISTS bottles (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL DEFAULT '',
			message     TEXT NOT NULL,
			created_at  INTEGER NOT NULL,
			unlock_date INTEGER NOT NULL,
			is_unlocked BOOLEAN DEFAULT 0,
			delay_days  INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bottles_unlock ON bottles(unlock_date)`,
		`CREATE INDEX IF NOT EXISTS idx_bottles_created ON bottles(created_at)`,

		`CREATE TABLE IF NOT EXISTS attachments (
			id        TEXT PRIMARY KEY,
			bottle_id TEXT NOT NULL REFERENCES bottles(id) ON DELETE CASCADE,
			name      TEXT NOT NULL,
			type      TEXT NOT NULL,
			data      TEXT NOT NULL,
			size      INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attachments_bottle ON attachments(bottle_id)`,

		// Key-value store for the three gamification records
		// (stats, achievements, streak), each an opaque JSON blob.
		`CREATE TABLE IF NOT EXISTS gamification (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// setKV stores a key-value pair in the gamification table.
func (d *DB) setKV(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO gamification (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// getKV retrieves a value from the gamification table.
// Returns "" if the key is absent.
func (d *DB) getKV(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM gamification WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
