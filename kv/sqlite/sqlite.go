/*
Package sqlite provides a SQLite-backed implementation of the kv.KV port.

PURPOSE:
  Durable local storage for the charge snapshot. One table, one row per
  key. The schema is migrated on open.

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging):
  - Readers don't block the writer
  - Better crash recovery

CONCURRENCY:
  A sync.RWMutex serializes access; this store is meant for exactly one
  process. Multi-process sharing is out of scope for the whole system.

USAGE:
  db, err := sqlite.Open("./data/chargeboard.db")
  if err != nil {
      log.Fatal(err)
  }
  defer db.Close()

SEE ALSO:
  - kv/kv.go: Port definition and in-memory implementation
*/
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// DB implements kv.KV on a single SQLite table.
type DB struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (creating if needed) a SQLite-backed KV at the given path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &DB{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := d.db.Exec(schema)
	return err
}

// Get returns the value for key and whether it exists. A read failure is
// reported as absence; the caller's corrupt-data fallback covers it.
func (d *DB) Get(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var value string
	err := d.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		// sql.ErrNoRows and genuine read failures both surface as absence;
		// the charge store falls back to its seed either way.
		return "", false
	}
	return value, true
}

// Set stores value under key, overwriting any previous value.
func (d *DB) Set(key, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
