package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteKV is the durable KV scope, backed by a single kv table.
type SQLiteKV struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the database at dsn and ensures the schema.
func OpenSQLite(dsn string) (*SQLiteKV, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  k TEXT PRIMARY KEY,
  v TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteKV{db: db}, nil
}

// Get returns the blob under key, or absence. Read errors are swallowed and
// logged; callers treat an unreadable key the same as a missing one.
func (s *SQLiteKV) Get(key string) (string, bool) {
	var v string
	err := s.db.Get(&v, `SELECT v FROM kv WHERE k = ?`, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[store] read %q failed: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(k, v, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE k = ?`, key); err != nil {
		return fmt.Errorf("store: remove %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Close() error { return s.db.Close() }
