// Package store handles SQLite persistence behind a key/value contract.
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access behind a best-effort key/value API. Read and
// write failures after Open are logged and absorbed: Get reports absence,
// Set reports failure through its boolean result, and no method returns
// an error. Callers stay insulated from storage unavailability.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the SQLite database and applies migrations.
// A nil logger defaults to zap.NewNop.
func Open(path string, log *zap.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return open(path, log)
}

// OpenMemory opens an in-memory store. It serves tests and the fallback
// path when the on-disk database cannot be opened; contents do not
// survive the process.
func OpenMemory(log *zap.Logger) (*Store, error) {
	return open(":memory:", log)
}

func open(dsn string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, log: log}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

// Get returns the value stored under key. The second result is false
// when the key is absent or the read failed.
func (s *Store) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("kv read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value. It reports
// whether the write succeeded.
func (s *Store) Set(key, value string) bool {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("kv delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Clear deletes every stored key.
func (s *Store) Clear() {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		s.log.Warn("kv clear failed", zap.Error(err))
	}
}
