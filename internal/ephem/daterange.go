package ephem

import "time"

// Default supported window of the primary ephemeris (JPL DE430t coverage).
// Both bounds are inclusive.
var (
	DefaultMinDate = time.Date(1550, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultMaxDate = time.Date(2650, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

// checkDateRange validates that t lies inside [min, max]. It runs once per
// call, before any per-body work, so an out-of-range instant fails the
// whole call rather than silently omitting bodies.
func checkDateRange(t time.Time, min, max time.Time) error {
	u := t.UTC()
	if u.Before(min) || u.After(max) {
		return &DateRangeError{Instant: u, Min: min, Max: max}
	}
	return nil
}
