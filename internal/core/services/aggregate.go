package services

import (
	"sort"
	"time"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

// DefaultWindowDays is the rolling window every caller uses today.
const DefaultWindowDays = 7

// WindowStats aggregates records over the inclusive window of civil
// days [reference-windowDays+1, reference] in the given location.
//
// PerDay always has exactly windowDays entries, oldest first; a day
// with no records reports count 0 and average 0. Only records with a
// usable rating contribute to counts and sums, so the window average
// is always sum/count over parseable ratings, or 0 for an empty
// window.
func WindowStats(records []domain.Record, reference time.Time, windowDays int, loc *time.Location) domain.WindowStats {
	if windowDays < 1 {
		windowDays = DefaultWindowDays
	}

	ry, rm, rd := reference.In(loc).Date()

	days := make([]string, windowDays)
	index := make(map[string]int, windowDays)
	for i := 0; i < windowDays; i++ {
		// Civil-day arithmetic: normalized by time.Date, so DST
		// transitions cannot skip or double a bucket.
		day := time.Date(ry, rm, rd-(windowDays-1)+i, 0, 0, 0, 0, loc).Format(domain.DayFormat)
		days[i] = day
		index[day] = i
	}

	sums := make([]int, windowDays)
	counts := make([]int, windowDays)
	total, count := 0, 0

	for _, rec := range records {
		if !rec.HasRating() {
			continue
		}
		i, ok := index[rec.Day(loc)]
		if !ok {
			continue
		}
		sums[i] += rec.Rating
		counts[i]++
		total += rec.Rating
		count++
	}

	stats := domain.WindowStats{
		From:   days[0],
		To:     days[windowDays-1],
		Count:  count,
		PerDay: make([]domain.DayStats, windowDays),
	}
	if count > 0 {
		stats.Average = float64(total) / float64(count)
	}
	for i, day := range days {
		ds := domain.DayStats{Day: day, Count: counts[i]}
		if counts[i] > 0 {
			ds.Average = float64(sums[i]) / float64(counts[i])
		}
		stats.PerDay[i] = ds
	}
	return stats
}

// InWindow returns the records whose civil day falls inside the
// inclusive window [reference-windowDays+1, reference].
func InWindow(records []domain.Record, reference time.Time, windowDays int, loc *time.Location) []domain.Record {
	if windowDays < 1 {
		windowDays = DefaultWindowDays
	}

	ry, rm, rd := reference.In(loc).Date()
	first := time.Date(ry, rm, rd-windowDays+1, 0, 0, 0, 0, loc).Format(domain.DayFormat)
	last := time.Date(ry, rm, rd, 0, 0, 0, 0, loc).Format(domain.DayFormat)

	var within []domain.Record
	for _, rec := range records {
		day := rec.Day(loc)
		if day >= first && day <= last {
			within = append(within, rec)
		}
	}
	return within
}

// GroupByRole partitions records by the roster's name-to-role lookup.
// Records whose name the roster does not know land in the
// domain.RoleUnassigned bucket.
func GroupByRole(records []domain.Record, roster domain.Roster) map[domain.Role][]domain.Record {
	groups := make(map[domain.Role][]domain.Record)
	for _, rec := range records {
		role := roster.RoleOf(rec.Name)
		groups[role] = append(groups[role], rec)
	}
	return groups
}

// RoleBreakdown computes per-role count and average over the given
// records, sorted by role name for stable output.
func RoleBreakdown(records []domain.Record, roster domain.Roster) []domain.RoleStats {
	groups := GroupByRole(records, roster)

	breakdown := make([]domain.RoleStats, 0, len(groups))
	for role, members := range groups {
		sum, count := 0, 0
		for _, rec := range members {
			if !rec.HasRating() {
				continue
			}
			sum += rec.Rating
			count++
		}
		rs := domain.RoleStats{Role: role, Count: count}
		if count > 0 {
			rs.Average = float64(sum) / float64(count)
		}
		breakdown = append(breakdown, rs)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Role < breakdown[j].Role
	})
	return breakdown
}
