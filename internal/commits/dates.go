package commits

import (
	"fmt"
	"strings"
	"time"
)

// authoredDateLayout is ISO-8601 with a numeric offset, never "Z".
const authoredDateLayout = "2006-01-02T15:04:05-07:00"

const dateOnlyLayout = "2006-01-02"

// Layouts without an offset are interpreted in the service's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseBound parses an ISO-8601 date or date-time. An empty string yields nil.
// When endOfDay is set, a date without a time covers the whole day.
func ParseBound(s string, endOfDay bool, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, s, loc); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return &t, nil
	}

	return nil, fmt.Errorf("invalid date %q (expected ISO 8601, e.g. 2024-01-31 or 2024-01-31T23:59:59)", s)
}
