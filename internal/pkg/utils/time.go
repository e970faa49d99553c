package utils

import (
	"clinix-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"time"
)

var appointmentDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseAppointmentDate accepts RFC 3339 instants and zone-less date times.
// Zone-less values are read in loc. The result is UTC with millisecond
// precision, the precision MongoDB stores dates with.
func ParseAppointmentDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, exceptions.ErrCannotParseAppointmentDate(errors.New("empty date"))
	}
	if loc == nil {
		loc = time.UTC
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return normalizeDate(parsed), nil
	}

	var lastErr error
	for _, layout := range appointmentDateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return normalizeDate(parsed), nil
		}
		lastErr = err
	}
	return time.Time{}, exceptions.ErrCannotParseAppointmentDate(lastErr)
}

func normalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
