// Package memory provides an in-memory driven.FileStore for testing.
// It honours the full compare-and-swap contract, so service tests can
// exercise version conflicts and the initialization race without a
// network.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

type file struct {
	content string
	version int
}

// FileStore is an in-memory implementation of driven.FileStore.
type FileStore struct {
	mu    sync.Mutex
	files map[string]*file

	// WriteErr, when set, is returned by every Write. Lets tests
	// simulate transient store failures.
	WriteErr error

	// Writes counts successful writes.
	Writes int
}

// NewFileStore creates an empty in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{files: make(map[string]*file)}
}

// Seed sets a file's content directly, bumping its version.
func (s *FileStore) Seed(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[path]
	if !ok {
		f = &file{}
		s.files[path] = f
	}
	f.content = content
	f.version++
}

// Content returns a file's current content for assertions.
func (s *FileStore) Content(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[path]
	if !ok {
		return "", false
	}
	return f.content, true
}

// Read fetches the current content and version of the file.
func (s *FileStore) Read(_ context.Context, path string) (driven.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[path]
	if !ok {
		return driven.File{}, fmt.Errorf("memory: read %s: %w", path, domain.ErrNotFound)
	}
	return driven.File{Content: f.content, Version: strconv.Itoa(f.version)}, nil
}

// Write performs a compare-and-swap update of the file.
func (s *FileStore) Write(_ context.Context, path, content, expectedVersion, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return "", s.WriteErr
	}

	f, ok := s.files[path]
	if !ok {
		if expectedVersion != "" {
			return "", fmt.Errorf("memory: write %s: %w", path, domain.ErrVersionConflict)
		}
		s.files[path] = &file{content: content, version: 1}
		s.Writes++
		return "1", nil
	}

	if expectedVersion != strconv.Itoa(f.version) {
		return "", fmt.Errorf("memory: write %s: %w", path, domain.ErrVersionConflict)
	}
	f.content = content
	f.version++
	s.Writes++
	return strconv.Itoa(f.version), nil
}

// EnsureInitialized reads the file, creating it first if absent.
func (s *FileStore) EnsureInitialized(ctx context.Context, path, defaultContent string) (driven.File, error) {
	s.mu.Lock()
	if f, ok := s.files[path]; ok {
		defer s.mu.Unlock()
		return driven.File{Content: f.content, Version: strconv.Itoa(f.version)}, nil
	}
	s.files[path] = &file{content: defaultContent, version: 1}
	s.Writes++
	s.mu.Unlock()

	return s.Read(ctx, path)
}
