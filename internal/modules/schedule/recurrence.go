package schedule

import (
	"fmt"
	"time"
)

// enumerateWeekday lists, in chronological order, every calendar date in the
// closed window [windowStart, windowEnd] that falls on the given weekday
// (0 = Sunday .. 6 = Saturday). Dates are compared calendar-only, so DST
// transitions inside the window cannot affect the result.
func enumerateWeekday(weekday int, windowStart, windowEnd time.Time) []time.Time {
	dates := []time.Time{}

	cur := truncateToDate(windowStart)
	end := truncateToDate(windowEnd)

	// at most 6 steps to the first matching weekday
	for int(cur.Weekday()) != weekday {
		cur = cur.AddDate(0, 0, 1)
		if cur.After(end) {
			return dates
		}
	}

	for !cur.After(end) {
		dates = append(dates, cur)
		cur = cur.AddDate(0, 0, 7)
	}
	return dates
}

// combineInstant resolves a calendar date plus an "HH:MM" wall-clock string
// into the absolute instant of that wall-clock time in loc. Building the
// instant with time.Date keeps the wall clock stable across DST changes.
func combineInstant(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
