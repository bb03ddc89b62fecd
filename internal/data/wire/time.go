package wire

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the layout written to the wire: RFC 3339 in UTC with milliseconds.
	LayoutISO = "2006-01-02T15:04:05.000Z07:00"

	// layoutLocal is what browser datetime-local inputs produce (no zone).
	layoutLocal        = "2006-01-02T15:04"
	layoutLocalSeconds = "2006-01-02T15:04:05"
)

// FormatTime renders t as an ISO-8601 string in UTC. The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(LayoutISO)
}

// ParseTime parses an ISO-8601 date-time. Values carrying an offset are taken as-is;
// zone-less values ("2025-01-10T08:00") are interpreted in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse time: empty value")
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{layoutLocal, layoutLocalSeconds} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse time %q: not an ISO-8601 date-time", s)
}
