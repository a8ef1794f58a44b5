package services

import (
	"time"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

// HasSubmittedToday reports whether the log already holds a record for
// name on the same civil day as now, in the given location. Name
// matching is exact and case-sensitive.
//
// Called once per submission attempt, before the append. Two
// concurrent submitters can both pass this check against a stale read;
// the store's compare-and-swap write settles that race.
func HasSubmittedToday(records []domain.Record, name string, now time.Time, loc *time.Location) bool {
	for _, rec := range records {
		if rec.Name == name && domain.SameCivilDay(rec.Timestamp, now, loc) {
			return true
		}
	}
	return false
}
