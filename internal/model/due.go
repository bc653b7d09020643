package model

import (
	"fmt"
	"strings"
	"time"
)

var dueLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDue parses a raw due value. RFC 3339 values keep their offset; zone-less
// layouts are read in loc (time.Local when nil).
func ParseDue(raw string, loc *time.Location) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDueFormat)
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dueLayouts {
		if ts, err := time.ParseInLocation(layout, v, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueFormat, raw)
}

// FormatRemaining renders the time left until due as "1d 2h 3m 4s". Zero components
// are omitted except seconds; an elapsed due renders as "0s".
func FormatRemaining(due, now time.Time) string {
	left := due.Sub(now)
	if left < 0 {
		left = 0
	}
	total := int64(left / time.Second)
	days := total / 86400
	hours := (total / 3600) % 24
	minutes := (total / 60) % 60
	seconds := total % 60

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}
