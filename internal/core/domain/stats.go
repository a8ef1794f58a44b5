package domain

// DayStats holds the aggregate for one civil day inside a window.
// Days with no ratings report Count 0 and Average 0, never NaN.
type DayStats struct {
	// Day is the civil day, rendered as "2006-01-02".
	Day string

	// Count is the number of records with a usable rating on this day.
	Count int

	// Average is the mean rating, or 0 when Count is 0.
	Average float64
}

// WindowStats holds aggregates over an inclusive window of civil days
// ending at a reference day.
type WindowStats struct {
	// From and To bound the window, oldest day first.
	From string
	To   string

	// Count is the number of records with a usable rating in the window.
	Count int

	// Average is the mean rating over the window, or 0 when Count is 0.
	Average float64

	// PerDay has exactly one entry per day in the window, oldest first,
	// including days with no records.
	PerDay []DayStats
}

// RoleStats holds the window aggregate for one roster role.
type RoleStats struct {
	Role    Role
	Count   int
	Average float64
}
