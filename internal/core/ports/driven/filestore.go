package driven

import "context"

// File is one revision of a backing blob.
type File struct {
	// Content is the blob text.
	Content string

	// Version is the opaque revision token to present on the next
	// compare-and-swap write. Its format is adapter-specific (a git
	// blob SHA, a row counter, ...).
	Version string
}

// FileStore reads and conditionally writes versioned text blobs.
// It is the sole serialization point between concurrent writers.
//
// Implementations map their native failures onto the domain errors:
// domain.ErrNotFound for an absent file, domain.ErrVersionConflict for
// a stale version on write, domain.ErrAuthFailed for rejected
// credentials and domain.ErrRateLimited for API quota exhaustion.
// Anything else propagates as a transient failure for the caller to
// retry.
type FileStore interface {
	// Read fetches the current content and version of the file.
	Read(ctx context.Context, path string) (File, error)

	// Write replaces the file content if and only if expectedVersion
	// still identifies the current revision. It returns the new
	// version on success. expectedVersion is empty when creating a
	// file that does not exist yet. message describes the change for
	// stores that record one (a commit message).
	Write(ctx context.Context, path, content, expectedVersion, message string) (string, error)

	// EnsureInitialized reads the file, creating it with defaultContent
	// first if it is absent. A present-but-empty file is returned
	// as-is. Two concurrent callers may race the create; the loser
	// re-reads, so both observe a single initial revision.
	EnsureInitialized(ctx context.Context, path, defaultContent string) (File, error)
}
