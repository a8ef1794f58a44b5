package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
	"github.com/custodia-labs/teampulse/internal/csvlog"
	"github.com/custodia-labs/teampulse/internal/logger"
)

// Ensure Query implements the driving port.
var _ driving.QueryService = (*Query)(nil)

// Query computes rolling statistics over the log. Read-only: it never
// writes, and an absent backing file reports an empty window.
type Query struct {
	store      driven.FileStore
	codec      *csvlog.Codec
	path       string
	rosterPath string
	loc        *time.Location
	clock      driven.Clock
}

// NewQuery creates the query service. rosterPath may be empty to
// disable per-role breakdowns; clock may be nil for the system clock.
func NewQuery(
	store driven.FileStore, codec *csvlog.Codec, path, rosterPath string,
	loc *time.Location, clock driven.Clock,
) *Query {
	if clock == nil {
		clock = driven.SystemClock
	}
	return &Query{
		store:      store,
		codec:      codec,
		path:       path,
		rosterPath: rosterPath,
		loc:        loc,
		clock:      clock,
	}
}

// Stats reports count, average and per-day buckets for the window of
// windowDays civil days ending today. windowDays below 1 falls back to
// the default 7.
func (q *Query) Stats(ctx context.Context, windowDays int) (driving.Report, error) {
	file, err := q.store.Read(ctx, q.path)
	if errors.Is(err, domain.ErrNotFound) {
		file = driven.File{}
	} else if err != nil {
		return driving.Report{}, fmt.Errorf("read log: %w", err)
	}

	records := q.codec.Decode(file.Content)
	now := q.clock()

	report := driving.Report{
		WindowStats: WindowStats(records, now, windowDays, q.loc),
	}

	if q.rosterPath == "" {
		return report, nil
	}

	roster, err := LoadRoster(ctx, q.store, q.rosterPath)
	if err != nil {
		return driving.Report{}, fmt.Errorf("read roster: %w", err)
	}
	if len(roster) == 0 {
		return report, nil
	}

	report.ByRole = RoleBreakdown(InWindow(records, now, windowDays, q.loc), roster)
	report.SubmittedToday = submittedToday(records, roster, now, q.loc)

	logger.Debug("query: %d records, %d roster members", len(records), len(roster))
	return report, nil
}

// submittedToday lists roster members, in roster order, who already
// have a record for the current civil day.
func submittedToday(records []domain.Record, roster domain.Roster, now time.Time, loc *time.Location) []string {
	names := make([]string, 0, len(roster))
	for _, m := range roster {
		if HasSubmittedToday(records, m.Name, now, loc) {
			names = append(names, m.Name)
		}
	}
	return names
}
