package driving

import "context"

// Submission is one inbound rating submission.
type Submission struct {
	Name   string
	Rating int
	Reason string
}

// SubmitService validates a submission, guards against a duplicate for
// the current civil day, and appends it to the log.
//
// Failures are typed through the domain errors: domain.ErrInvalidInput
// for bad input, domain.ErrAlreadySubmitted for a same-day duplicate,
// domain.ErrVersionConflict for a lost compare-and-swap race, and
// store errors otherwise.
type SubmitService interface {
	Submit(ctx context.Context, sub Submission) error
}
