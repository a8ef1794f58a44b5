package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the response status onto the domain error taxonomy so
// callers can classify with errors.Is and never import this package's
// types.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrAuthFailed
	case http.StatusForbidden, http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// The contents API rejects a PUT whose SHA is stale with 409,
		// and a PUT missing a required SHA with 422.
		return domain.ErrVersionConflict
	default:
		return nil
	}
}

// wrapError converts go-github errors to classified store errors.
// Anything it cannot classify propagates wrapped, which callers treat
// as a transient failure.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("github: %s: %w", operation, domain.ErrRateLimited)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("github: %s: %w", operation, domain.ErrRateLimited)
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return fmt.Errorf("%s: %w", operation, &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		})
	}

	return fmt.Errorf("github: %s: %w", operation, err)
}
