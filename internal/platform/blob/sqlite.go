package blob

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	perr "stockboard/internal/platform/errors"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite keeps blobs in one table of a local sqlite file
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// NewSQLite opens or creates the database at path
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		path = "stockboard.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "create sqlite dir %s", dir)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "open sqlite")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "create blobs table")
	}
	return &SQLite{db: db}, nil
}

// Driver names the backend
func (s *SQLite) Driver() Driver { return DriverSQLite }

// Get selects the blob for key
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey("blob.sqlite.get", key); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "select blob %s", key)
	}
	return data, nil
}

// Put upserts the blob for key
func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey("blob.sqlite.put", key); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "upsert blob %s", key)
	}
	return nil
}

// Delete removes the row for key
func (s *SQLite) Delete(ctx context.Context, key string) error {
	if err := checkKey("blob.sqlite.delete", key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "delete blob %s", key)
	}
	return nil
}

// Ping checks the database handle
func (s *SQLite) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "ping sqlite")
	}
	return nil
}

// Close releases the database handle
func (s *SQLite) Close() error { return s.db.Close() }
