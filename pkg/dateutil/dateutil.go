// Package dateutil provides the day-level date arithmetic the allocation
// engine depends on. All deltas are computed between UTC midnights so that
// daylight-saving transitions and non-midnight timestamps never produce
// off-by-one day counts.
package dateutil

import "time"

const dayMillis = 86_400_000

// Midnight truncates t to midnight UTC, discarding its zone and clock.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day distance from one date to another.
// Both are normalized to UTC midnight first; the result is negative when
// to precedes from.
func DaysBetween(from, to time.Time) int {
	deltaMillis := Midnight(to).Sub(Midnight(from)).Milliseconds()
	// Round to nearest whole day; midnight-to-midnight deltas divide
	// exactly, so this only matters for callers that skip Midnight.
	if deltaMillis >= 0 {
		return int((deltaMillis + dayMillis/2) / dayMillis)
	}
	return int((deltaMillis - dayMillis/2) / dayMillis)
}

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// ClampDayOfMonth clamps a requested day-of-month to the length of the
// month containing t, so day 31 resolves to the 30th or 28th/29th where
// needed. Days below 1 clamp to 1.
func ClampDayOfMonth(day int, t time.Time) int {
	if day < 1 {
		return 1
	}
	if max := DaysInMonth(t); day > max {
		return max
	}
	return day
}

// ResolveDayOfMonth converts a legacy day-of-month due value into the next
// concrete calendar date on or after ref. If the clamped day has not yet
// passed in ref's month the date lands in that month; otherwise it rolls to
// the following month, re-clamping because the next month may be shorter.
func ResolveDayOfMonth(day int, ref time.Time) time.Time {
	ref = Midnight(ref)
	clamped := ClampDayOfMonth(day, ref)
	if clamped >= ref.Day() {
		return time.Date(ref.Year(), ref.Month(), clamped, 0, 0, 0, 0, time.UTC)
	}
	next := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	clamped = ClampDayOfMonth(day, next)
	return time.Date(next.Year(), next.Month(), clamped, 0, 0, 0, 0, time.UTC)
}
