package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
	"github.com/custodia-labs/teampulse/internal/csvlog"
	"github.com/custodia-labs/teampulse/internal/logger"
)

// Ensure Submit implements the driving port.
var _ driving.SubmitService = (*Submit)(nil)

// SubmitOptions tunes submit behaviour beyond the required flow.
type SubmitOptions struct {
	// ReasonRequired rejects submissions with an empty reason.
	ReasonRequired bool

	// ConflictRetries is how many times a lost compare-and-swap race
	// is retried with a fresh read-guard-append cycle. Zero keeps the
	// base behaviour: a lost race surfaces to the caller as a
	// conflict. This is a documented enhancement, off by default.
	ConflictRetries int
}

// Submit appends validated rating records to the versioned log.
type Submit struct {
	store driven.FileStore
	codec *csvlog.Codec
	path  string
	loc   *time.Location
	clock driven.Clock
	opts  SubmitOptions
}

// NewSubmit creates the submit service. clock may be nil for the
// system clock.
func NewSubmit(
	store driven.FileStore, codec *csvlog.Codec, path string,
	loc *time.Location, clock driven.Clock, opts SubmitOptions,
) *Submit {
	if clock == nil {
		clock = driven.SystemClock
	}
	return &Submit{
		store: store,
		codec: codec,
		path:  path,
		loc:   loc,
		clock: clock,
		opts:  opts,
	}
}

// Submit runs the full flow: load, validate, guard, append.
//
// The whole operation is one read-modify-write against the backing
// file, with the version read threaded into the write. A write that
// fails leaves the log exactly as it was before the call.
func (s *Submit) Submit(ctx context.Context, sub driving.Submission) error {
	// Trim once here so the stored name matches what the codec gives
	// back, keeping the duplicate guard honest across round-trips.
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Reason = strings.TrimSpace(sub.Reason)

	if err := domain.ValidateSubmission(sub.Name, sub.Rating, sub.Reason, s.opts.ReasonRequired); err != nil {
		return err
	}

	attempts := 1 + s.opts.ConflictRetries
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			logger.Debug("submit: retrying after version conflict (attempt %d/%d)", attempt+1, attempts)
		}
		err = s.appendOnce(ctx, sub)
		if !errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
	}
	return err
}

// appendOnce performs one read-guard-append cycle.
func (s *Submit) appendOnce(ctx context.Context, sub driving.Submission) error {
	file, err := s.store.EnsureInitialized(ctx, s.path, s.codec.InitialContent())
	if err != nil {
		return fmt.Errorf("load log: %w", err)
	}

	records := s.codec.Decode(file.Content)
	now := s.clock()

	if HasSubmittedToday(records, sub.Name, now, s.loc) {
		return domain.ErrAlreadySubmitted
	}

	rec := domain.Record{
		Timestamp: now.UTC().Truncate(time.Second),
		Name:      sub.Name,
		Rating:    sub.Rating,
		Reason:    sub.Reason,
	}

	content := s.codec.Encode(append(records, rec))
	message := fmt.Sprintf("Add rating: %s %s", rec.Name, rec.Day(s.loc))

	if _, err := s.store.Write(ctx, s.path, content, file.Version, message); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	logger.Debug("submit: appended record for %s on %s", rec.Name, rec.Day(s.loc))
	return nil
}
