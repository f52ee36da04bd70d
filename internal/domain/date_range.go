package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange builds a DateRange from two YYYY-MM-DD strings
func ParseDateRange(start, end string) (DateRange, error) {
	startDay, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parsing start date: %w", err)
	}

	endDay, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parsing end date: %w", err)
	}

	if endDay.Before(startDay) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	return DateRange{Start: startDay, End: endDay}, nil
}

// Contains reports whether the calendar day of t lies within the range.
// The time of day is ignored.
func (r DateRange) Contains(t time.Time) bool {
	day := CalendarDay(t)
	return !day.Before(CalendarDay(r.Start)) && !day.After(CalendarDay(r.End))
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

// CalendarDay strips the clock from t, keeping its wall-clock date
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
