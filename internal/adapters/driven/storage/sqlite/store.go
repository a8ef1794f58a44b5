// Package sqlite implements driven.FileStore on a local SQLite
// database, for deployments that keep the log on disk instead of in a
// remote repository. Each path maps to one row; a monotonically
// increasing row version is the compare-and-swap token.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path    TEXT PRIMARY KEY,
	content TEXT NOT NULL,
	version INTEGER NOT NULL
);
`

// Store is a SQLite-backed driven.FileStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the database in dataDir. If dataDir is
// empty, defaults to ~/.teampulse/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".teampulse", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "pulse.db")

	// WAL mode for better concurrency between the server and CLI.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Read fetches the current content and version of the file.
func (s *Store) Read(ctx context.Context, path string) (driven.File, error) {
	var content string
	var version int64
	err := s.db.QueryRowContext(ctx,
		`SELECT content, version FROM files WHERE path = ?`, path,
	).Scan(&content, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return driven.File{}, fmt.Errorf("sqlite: read %s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return driven.File{}, fmt.Errorf("sqlite: read %s: %w", path, err)
	}
	return driven.File{Content: content, Version: strconv.FormatInt(version, 10)}, nil
}

// Write performs the compare-and-swap update. The version predicate in
// the UPDATE makes the row the serialization point: a stale version
// matches no rows.
func (s *Store) Write(ctx context.Context, path, content, expectedVersion, _ string) (string, error) {
	if expectedVersion == "" {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO files (path, content, version) VALUES (?, ?, 1)`, path, content)
		if err != nil {
			// Primary key violation: someone created the file first.
			return "", fmt.Errorf("sqlite: create %s: %w", path, domain.ErrVersionConflict)
		}
		return "1", nil
	}

	expected, err := strconv.ParseInt(expectedVersion, 10, 64)
	if err != nil {
		return "", fmt.Errorf("sqlite: bad version %q: %w", expectedVersion, domain.ErrVersionConflict)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE files SET content = ?, version = version + 1 WHERE path = ? AND version = ?`,
		content, path, expected)
	if err != nil {
		return "", fmt.Errorf("sqlite: write %s: %w", path, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("sqlite: write %s: %w", path, err)
	}
	if affected == 0 {
		return "", fmt.Errorf("sqlite: write %s: %w", path, domain.ErrVersionConflict)
	}
	return strconv.FormatInt(expected+1, 10), nil
}

// EnsureInitialized reads the file, creating it first if absent.
func (s *Store) EnsureInitialized(ctx context.Context, path, defaultContent string) (driven.File, error) {
	file, err := s.Read(ctx, path)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return driven.File{}, err
	}

	if _, err := s.Write(ctx, path, defaultContent, "", "initialize"); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			// Lost the create race; read the winner's revision.
			return s.Read(ctx, path)
		}
		return driven.File{}, err
	}
	return driven.File{Content: defaultContent, Version: "1"}, nil
}
