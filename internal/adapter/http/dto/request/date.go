package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts calendar dates (2026-03-10) and RFC3339 timestamps.
// An empty value yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
