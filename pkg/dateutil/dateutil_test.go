package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 14, DaysBetween(utc(2026, time.March, 1), utc(2026, time.March, 15)))
	assert.Equal(t, 0, DaysBetween(utc(2026, time.March, 1), utc(2026, time.March, 1)))
	assert.Equal(t, -5, DaysBetween(utc(2026, time.March, 10), utc(2026, time.March, 5)))
	assert.Equal(t, 31, DaysBetween(utc(2026, time.January, 1), utc(2026, time.February, 1)))
	// Leap year February.
	assert.Equal(t, 29, DaysBetween(utc(2028, time.February, 1), utc(2028, time.March, 1)))
}

func TestDaysBetween_IgnoresTimeOfDayAndZone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2026, time.March, 1, 23, 45, 0, 0, est)
	early := time.Date(2026, time.March, 8, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysBetween(late, early))
}

func TestDaysBetween_AcrossDSTTransition(t *testing.T) {
	// US spring-forward happened 2026-03-08; a naive local-time subtraction
	// comes up one hour short and truncates to 6 days.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	before := time.Date(2026, time.March, 5, 12, 0, 0, 0, loc)
	after := time.Date(2026, time.March, 12, 12, 0, 0, 0, loc)

	assert.Equal(t, 7, DaysBetween(before, after))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(utc(2026, time.January, 10)))
	assert.Equal(t, 28, DaysInMonth(utc(2026, time.February, 10)))
	assert.Equal(t, 29, DaysInMonth(utc(2028, time.February, 10)))
	assert.Equal(t, 30, DaysInMonth(utc(2026, time.September, 1)))
}

func TestClampDayOfMonth(t *testing.T) {
	assert.Equal(t, 30, ClampDayOfMonth(31, utc(2026, time.September, 1)))
	assert.Equal(t, 28, ClampDayOfMonth(31, utc(2026, time.February, 1)))
	assert.Equal(t, 15, ClampDayOfMonth(15, utc(2026, time.February, 1)))
	assert.Equal(t, 1, ClampDayOfMonth(0, utc(2026, time.February, 1)))
}

func TestResolveDayOfMonth(t *testing.T) {
	tests := []struct {
		name string
		day  int
		ref  time.Time
		want time.Time
	}{
		{
			name: "later this month",
			day:  20,
			ref:  utc(2026, time.March, 10),
			want: utc(2026, time.March, 20),
		},
		{
			name: "today counts as not passed",
			day:  10,
			ref:  utc(2026, time.March, 10),
			want: utc(2026, time.March, 10),
		},
		{
			name: "already passed rolls to next month",
			day:  5,
			ref:  utc(2026, time.March, 10),
			want: utc(2026, time.April, 5),
		},
		{
			name: "day 31 clamps in a 30-day month",
			day:  31,
			ref:  utc(2026, time.September, 1),
			want: utc(2026, time.September, 30),
		},
		{
			name: "day 31 clamps in February",
			day:  31,
			ref:  utc(2026, time.February, 10),
			want: utc(2026, time.February, 28),
		},
		{
			name: "rollover re-clamps for a shorter next month",
			day:  31,
			ref:  utc(2026, time.January, 31),
			want: utc(2026, time.January, 31),
		},
		{
			name: "rollover from late January lands on Feb 28",
			day:  30,
			ref:  utc(2026, time.January, 31),
			want: utc(2026, time.February, 28),
		},
		{
			name: "non-midnight reference is normalized first",
			day:  12,
			ref:  time.Date(2026, time.March, 11, 22, 15, 0, 0, time.FixedZone("CET", 3600)),
			want: utc(2026, time.March, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDayOfMonth(tt.day, tt.ref))
		})
	}
}
