package domain

import (
	"strings"
	"time"
)

// Rating bounds for a submission.
const (
	MinRating = 1
	MaxRating = 5
)

// DayFormat is the canonical rendering of a civil day.
const DayFormat = "2006-01-02"

// Record represents one culture-rating submission.
// Records are append-only: once written they are never edited or deleted.
type Record struct {
	// Timestamp is the submission instant, stored in UTC.
	Timestamp time.Time

	// Name identifies the submitter. Free text, compared case-sensitively.
	Name string

	// Rating is the culture score, 1 to 5. A zero value marks a row
	// whose rating could not be parsed; such rows are excluded from
	// aggregation.
	Rating int

	// Reason is optional free text explaining the rating.
	Reason string
}

// HasRating reports whether the record carries a usable rating.
func (r Record) HasRating() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}

// Day returns the record's civil day in the given location,
// rendered as "2006-01-02".
func (r Record) Day(loc *time.Location) string {
	return r.Timestamp.In(loc).Format(DayFormat)
}

// ValidateSubmission checks a candidate submission before it becomes a
// Record. The delimiter check keeps names from corrupting the CSV
// column count.
func ValidateSubmission(name string, rating int, reason string, reasonRequired bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	if strings.ContainsAny(name, ",\n\r") {
		return ErrInvalidInput
	}
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidInput
	}
	if reasonRequired && strings.TrimSpace(reason) == "" {
		return ErrInvalidInput
	}
	return nil
}

// SameCivilDay reports whether two instants fall on the same calendar
// day in the given location.
func SameCivilDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
