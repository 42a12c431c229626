// Package store persists the code-to-video mapping in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"kinobot/internal/code"
)

// ErrNotFound is returned when no video is registered under a code.
var ErrNotFound = errors.New("video not found")

// Video is one registry entry: a short code mapped to a Telegram file
// reference and a display title. FileID is opaque; it is whatever
// Telegram issued for the uploaded video and is never re-validated.
type Video struct {
	Code   string
	Title  string
	FileID string
}

// VideoStore is the SQLite-backed video registry.
type VideoStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewVideoStore opens the registry database at the given path.
// The schema is created if it doesn't exist, and parent directories
// are created if needed.
func NewVideoStore(path string) (*VideoStore, error) {
	logger := slog.Default().With("component", "store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps concurrent handler goroutines from serializing on writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &VideoStore{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("video store initialized", "path", path)
	return s, nil
}

func (s *VideoStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS videos (
			code    TEXT PRIMARY KEY,
			title   TEXT NOT NULL,
			file_id TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *VideoStore) Close() error {
	s.logger.Info("closing video store")
	return s.db.Close()
}

// Put inserts or replaces the entry stored under the normalized code.
// An existing entry with the same code is overwritten atomically.
func (s *VideoStore) Put(ctx context.Context, rawCode, title, fileID string) error {
	c := code.Normalize(rawCode)
	_, err := s.db.ExecContext(ctx,
		`REPLACE INTO videos (code, title, file_id) VALUES (?, ?, ?)`,
		c, title, fileID,
	)
	if err != nil {
		return fmt.Errorf("storing video %s: %w", c, err)
	}
	s.logger.Debug("stored video", "code", c, "title", title)
	return nil
}

// Get retrieves the entry stored under the normalized code.
// Returns ErrNotFound if no entry exists.
func (s *VideoStore) Get(ctx context.Context, rawCode string) (*Video, error) {
	c := code.Normalize(rawCode)

	var v Video
	err := s.db.QueryRowContext(ctx,
		`SELECT code, title, file_id FROM videos WHERE code = ?`, c,
	).Scan(&v.Code, &v.Title, &v.FileID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying video %s: %w", c, err)
	}
	return &v, nil
}

// Delete removes the entry stored under the normalized code and
// reports whether an entry was removed. Absence is not an error.
func (s *VideoStore) Delete(ctx context.Context, rawCode string) (bool, error) {
	c := code.Normalize(rawCode)

	result, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE code = ?`, c)
	if err != nil {
		return false, fmt.Errorf("deleting video %s: %w", c, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected > 0 {
		s.logger.Debug("deleted video", "code", c)
	}
	return rowsAffected > 0, nil
}

// Count returns the number of registered videos.
func (s *VideoStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting videos: %w", err)
	}
	return n, nil
}
