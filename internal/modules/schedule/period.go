package schedule

import (
	"time"
)

const dateLayout = "2006-01-02"

// Period is a request-scoped date window: Start inclusive, End exclusive.
// Both bounds are calendar dates (midnight UTC, no time-of-day component).
type Period struct {
	Start time.Time
	End   time.Time
}

// LastDate is the final calendar date inside the window, used as the closed
// upper bound for weekday enumeration.
func (p Period) LastDate() time.Time {
	return p.End.AddDate(0, 0, -1)
}

func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

var periodSpans = map[string]int{
	"week":      7,
	"two_weeks": 14,
	"month":     30,
}

// ResolvePeriod turns a period keyword and an optional "2006-01-02" anchor
// into a concrete window. An empty anchor means today. Validation happens
// here, before any read or write.
func ResolvePeriod(keyword, startDate string) (Period, error) {
	days, ok := periodSpans[keyword]
	if !ok {
		return Period{}, ErrInvalidPeriod
	}

	var start time.Time
	if startDate == "" {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Period{}, ErrInvalidDate
		}
		start = parsed
	}

	return Period{Start: start, End: start.AddDate(0, 0, days)}, nil
}
