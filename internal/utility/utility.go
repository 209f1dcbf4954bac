package utility

import (
	"fmt"
	"strings"
	"time"
)

// CurrentTimeInMilli returns the current time in Unix milliseconds
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate parses an RFC 3339 timestamp or a plain YYYY-MM-DD date (as UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("invalid date %q: %w", s, lastErr)
}

// ParseDatePtr parses s, returning nil for nil or empty input
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
