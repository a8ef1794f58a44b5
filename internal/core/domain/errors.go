package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// An absent backing file is recovered internally via
	// initialization and never surfaced to API clients.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadySubmitted indicates the submitter already has a record
	// for the current civil day.
	ErrAlreadySubmitted = errors.New("already submitted today")

	// ErrVersionConflict indicates a compare-and-swap write lost the
	// race: another writer updated the file since the caller's read.
	ErrVersionConflict = errors.New("version conflict")

	// ErrAuthFailed indicates the store rejected the configured
	// credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the store's API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
