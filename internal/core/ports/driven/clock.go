package driven

import "time"

// Clock supplies the current instant. Services take a Clock instead of
// calling time.Now so duplicate-day and windowing logic can be tested
// against fixed dates.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() time.Time {
	return time.Now()
}
