package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
	"github.com/custodia-labs/teampulse/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// Store is a GitHub-backed driven.FileStore. The blob SHA from the
// contents API is the version token.
type Store struct {
	gh      *gh.Client
	cfg     Config
	limiter *rateLimiter
}

// NewStore creates a store for the configured repository.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Owner == "" || cfg.Repo == "" || cfg.Token == "" {
		return nil, fmt.Errorf("github: owner, repo and token are required: %w", domain.ErrAuthFailed)
	}
	return &Store{
		gh:      newClient(ctx, cfg.Token),
		cfg:     cfg,
		limiter: newRateLimiter(),
	}, nil
}

// Read fetches the file's decoded content and its blob SHA.
func (s *Store) Read(ctx context.Context, path string) (driven.File, error) {
	if err := s.limiter.wait(ctx); err != nil {
		return driven.File{}, err
	}

	opts := &gh.RepositoryContentGetOptions{Ref: s.cfg.Branch}
	content, _, resp, err := s.gh.Repositories.GetContents(ctx, s.cfg.Owner, s.cfg.Repo, path, opts)
	s.updateRateLimit(resp)
	if err != nil {
		return driven.File{}, wrapError(err, "get contents")
	}
	if content == nil {
		return driven.File{}, fmt.Errorf("github: %s is a directory, not a file: %w", path, domain.ErrInvalidInput)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return driven.File{}, fmt.Errorf("github: decode content: %w", err)
	}

	logger.Debug("github: read %s at %s", path, content.GetSHA())
	return driven.File{Content: decoded, Version: content.GetSHA()}, nil
}

// Write performs the compare-and-swap update: the expected version is
// sent as the blob SHA, and GitHub rejects the PUT if the file moved.
func (s *Store) Write(ctx context.Context, path, content, expectedVersion, message string) (string, error) {
	if err := s.limiter.wait(ctx); err != nil {
		return "", err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
	}
	if s.cfg.Branch != "" {
		opts.Branch = gh.Ptr(s.cfg.Branch)
	}

	var (
		res  *gh.RepositoryContentResponse
		resp *gh.Response
		err  error
	)
	if expectedVersion == "" {
		res, resp, err = s.gh.Repositories.CreateFile(ctx, s.cfg.Owner, s.cfg.Repo, path, opts)
	} else {
		opts.SHA = gh.Ptr(expectedVersion)
		res, resp, err = s.gh.Repositories.UpdateFile(ctx, s.cfg.Owner, s.cfg.Repo, path, opts)
	}
	s.updateRateLimit(resp)
	if err != nil {
		return "", wrapError(err, "put contents")
	}

	newVersion := res.Content.GetSHA()
	logger.Debug("github: wrote %s at %s", path, newVersion)
	return newVersion, nil
}

// EnsureInitialized reads the file, creating it with defaultContent if
// it does not exist. Two concurrent callers may both see the 404 and
// race the create; GitHub lets exactly one through, and the loser
// falls back to reading the winner's revision.
func (s *Store) EnsureInitialized(ctx context.Context, path, defaultContent string) (driven.File, error) {
	file, err := s.Read(ctx, path)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return driven.File{}, err
	}

	logger.Debug("github: %s absent, initializing", path)
	version, err := s.Write(ctx, path, defaultContent, "", "Initialize "+path)
	if err == nil {
		return driven.File{Content: defaultContent, Version: version}, nil
	}
	if errors.Is(err, domain.ErrVersionConflict) {
		// Lost the create race; the winner's content stands.
		return s.Read(ctx, path)
	}
	return driven.File{}, err
}

func (s *Store) updateRateLimit(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	s.limiter.updateFromResponse(resp.Response)
}
