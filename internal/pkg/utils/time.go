package utils

import (
	"campushub-service/internal/pkg/constvars"
	"time"
)

// ParseDateKey parses a YYYY-MM-DD key into a calendar date. The result
// is anchored at UTC midnight; it represents a plain date, not an
// instant, and must never be shifted by a timezone afterwards.
func ParseDateKey(dateKey string) (time.Time, error) {
	return time.Parse(constvars.DateKeyLayout, dateKey)
}

func FormatDateKey(date time.Time) string {
	return date.Format(constvars.DateKeyLayout)
}

// DayWindow returns the [start, end] instants covering one calendar day,
// for date-range filters over timestamp fields.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
