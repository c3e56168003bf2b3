package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) into a UTC midnight
// timestamp. Dates are keyed without a time component, so every stored
// date is normalized this way.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DateOf reduces an instant to its calendar date in loc, normalized to UTC
// midnight. The location is the single place where the day boundary policy
// lives; callers must not do their own wall-clock arithmetic.
func DateOf(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a normalized date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
