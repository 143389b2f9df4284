package ephem

import (
	"fmt"
	"time"
)

// DateRangeError reports an instant outside the primary source's supported
// window. It is fatal to the whole call and carries the offending instant
// and the configured bounds.
type DateRangeError struct {
	Instant time.Time
	Min     time.Time
	Max     time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("date %s is outside the supported ephemeris range %s to %s",
		e.Instant.Format(time.RFC3339),
		e.Min.Format("2006-01-02"),
		e.Max.Format("2006-01-02"))
}

// LoadError reports that backend data loaded but could not be used
// (corrupt or malformed), as opposed to being unreachable.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s ephemeris data: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DownloadError reports that backend data could not be acquired at all,
// usually a network problem. Distinct from LoadError so callers can tell
// "data unavailable" from "data corrupt".
type DownloadError struct {
	Source string
	Err    error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s ephemeris data: %v", e.Source, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
