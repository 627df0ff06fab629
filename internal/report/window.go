package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingDateFrom is returned when a window has no start.
var ErrMissingDateFrom = errors.New("start date is required")

// ParseDate accepts a calendar day or an RFC3339 timestamp. A calendar day
// used as the end of a window covers the whole day.
func ParseDate(v string, endOfDay bool) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", v)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// ParseWindow resolves user-supplied window bounds; an empty end leaves the window
// open.
func ParseWindow(from, to string) (time.Time, time.Time, error) {
	if strings.TrimSpace(from) == "" {
		return time.Time{}, time.Time{}, ErrMissingDateFrom
	}
	start, err := ParseDate(from, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if strings.TrimSpace(to) == "" {
		return start, time.Time{}, nil
	}
	end, err := ParseDate(to, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
