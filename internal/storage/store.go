package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is a fail-soft JSON key-value table over SQLite. Get returns the
// caller's default on any miss, decode failure or storage failure; Set and
// Remove report success as a boolean. No method ever returns an error:
// failures are logged and swallowed so callers never special-case storage
// corruption.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn and ensures the kv schema.
func Open(dsn string) *Store {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );`); err != nil {
		log.Fatalf("storage migration failed: %v", err)
	}
	return &Store{db: db}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads and decodes the value stored under key into a value of type T.
// Absent keys, undecodable values and storage failures all yield def.
func Get[T any](s *Store, key string, def T) T {
	var raw string
	err := s.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return def
	}
	if err != nil {
		log.Printf("storage: read %s: %v", key, err)
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("storage: decode %s: %v", key, err)
		return def
	}
	return out
}

// Set serializes value as JSON and stores it under key.
func (s *Store) Set(key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: encode %s: %v", key, err)
		return false
	}
	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
            ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		log.Printf("storage: write %s: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the value stored under key. Removing an absent key succeeds.
func (s *Store) Remove(key string) bool {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		log.Printf("storage: remove %s: %v", key, err)
		return false
	}
	return true
}

// Has reports whether key currently holds a value.
func (s *Store) Has(key string) bool {
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM kv WHERE key = ?`, key); err != nil {
		log.Printf("storage: probe %s: %v", key, err)
		return false
	}
	return n > 0
}

// Clear removes every key under the application namespace.
func (s *Store) Clear() bool {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key LIKE ?`, KeyPrefix+"%"); err != nil {
		log.Printf("storage: clear: %v", err)
		return false
	}
	return true
}
