// Package timeutil derives the greeting and the reporting month from a timestamp.
package timeutil

import (
	"time"

	"github.com/tirasundara/statement-digest/internal/domain"
)

// Greetings by time of day
const (
	GreetingMorning   = "Good morning"
	GreetingAfternoon = "Good afternoon"
	GreetingEvening   = "Good evening"
	GreetingNight     = "Good night"

	// DefaultGreeting is used when the timestamp cannot be read
	DefaultGreeting = GreetingAfternoon
)

// Greeting picks a greeting for a YYYY-MM-DD HH:MM:SS timestamp
func Greeting(ts string) string {
	t, err := time.Parse(domain.TimestampLayout, ts)
	if err != nil {
		return DefaultGreeting
	}
	return GreetingAt(t)
}

// GreetingAt picks a greeting for the hour of t
func GreetingAt(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return GreetingMorning
	case hour >= 12 && hour < 18:
		return GreetingAfternoon
	case hour >= 18 && hour < 23:
		return GreetingEvening
	default:
		return GreetingNight
	}
}

// MonthRange returns the first day of the timestamp's month and the
// timestamp's own date, both as YYYY-MM-DD. An unreadable timestamp yields
// the range from the first of the current month to today.
func MonthRange(ts string) (string, string) {
	return MonthRangeAt(ts, time.Now())
}

// MonthRangeAt is MonthRange with an explicit "now" for the fallback
func MonthRangeAt(ts string, now time.Time) (string, string) {
	t, err := time.Parse(domain.TimestampLayout, ts)
	if err != nil {
		t = now
	}

	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.Format(domain.DateLayout), t.Format(domain.DateLayout)
}
