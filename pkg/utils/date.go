package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a required yyyy-mm-dd query parameter.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("date parameter is required")
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// Truncate a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodEndingYesterday resolves a "last N days ending yesterday" window.
func PeriodEndingYesterday(days int, now time.Time) (time.Time, time.Time) {
	end := DateOnly(now).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))
	return start, end
}
