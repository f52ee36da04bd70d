package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tirasundara/statement-digest/internal/timeutil"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		ts   string
		want string
	}{
		{"2024-05-15 08:00:00", timeutil.GreetingMorning},
		{"2024-05-15 05:00:00", timeutil.GreetingMorning},
		{"2024-05-15 11:59:59", timeutil.GreetingMorning},
		{"2024-05-15 12:00:00", timeutil.GreetingAfternoon},
		{"2024-05-15 14:00:00", timeutil.GreetingAfternoon},
		{"2024-05-15 18:00:00", timeutil.GreetingEvening},
		{"2024-05-15 20:00:00", timeutil.GreetingEvening},
		{"2024-05-15 23:00:00", timeutil.GreetingNight},
		{"2024-05-15 02:00:00", timeutil.GreetingNight},
		{"2024-05-15 04:59:59", timeutil.GreetingNight},
		{"not-a-date", timeutil.GreetingAfternoon},
		{"", timeutil.GreetingAfternoon},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			assert.Equal(t, tt.want, timeutil.Greeting(tt.ts))
		})
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		ts        string
		wantStart string
		wantEnd   string
	}{
		{"2024-05-15 12:00:00", "2024-05-01", "2024-05-15"},
		{"2024-12-31 23:59:59", "2024-12-01", "2024-12-31"},
		{"2024-02-01 00:00:00", "2024-02-01", "2024-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			start, end := timeutil.MonthRange(tt.ts)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthRangeAt_FallsBackToNow(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

	start, end := timeutil.MonthRangeAt("garbage", now)

	assert.Equal(t, "2026-10-01", start)
	assert.Equal(t, "2026-10-19", end)
}
