// Package store is the persistence bridge: an opaque key-value store backed by
// a local SQLite file. The engine never talks to it directly — callers load a
// tree, hand it to the session, and persist snapshots after successful
// mutations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const dbFileName = "projectpad.sqlite"

// Stable keys for the two independently-persisted values.
const (
	KeyTree     = "tree"
	KeySettings = "settings"
)

// Store locates a projectpad data directory. The zero value (empty Dir) is
// usable for tests that never touch disk.
type Store struct {
	Dir string
}

// DefaultDir resolves the per-user data directory.
func DefaultDir() string {
	if d := strings.TrimSpace(os.Getenv("PROJECTPAD_DIR")); d != "" {
		return d
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".projectpad"
	}
	return filepath.Join(base, "projectpad")
}

// DBPath is the SQLite file the key-value table lives in.
func (s Store) DBPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Ensure creates the data directory if missing.
func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: empty dir")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.DBPath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness when a
	// second panel or the CLI writes concurrently.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Get returns the value stored under key, with ok=false when the key is
// absent.
func (s Store) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key, replacing any previous value.
func (s Store) Set(ctx context.Context, key, value string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, key, value)
	return err
}
