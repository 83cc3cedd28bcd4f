package booking

import "time"

// Meetings can start between 09:00 and 17:00 inclusive.
const (
	businessDayStartMinutes = 9 * 60
	businessDayEndMinutes   = 17 * 60
)

// BlackoutPolicy decides whether a meeting date is administratively blocked.
// It receives the reference "now" so callers (and tests) control the frame
// the relative rules are evaluated in.
type BlackoutPolicy func(date, now time.Time) bool

// DefaultBlackoutPolicy blocks the 10th and 20th of the current calendar
// month and the 15th of the next one, both relative to now. The rule is
// deliberately now-relative: a date that is bookable today may become
// blocked next month. See DESIGN.md for the month-end caveat.
func DefaultBlackoutPolicy(date, now time.Time) bool {
	year, month, _ := now.Date()

	if date.Year() == year && date.Month() == month {
		if d := date.Day(); d == 10 || d == 20 {
			return true
		}
	}

	next := time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())
	if date.Year() == next.Year() && date.Month() == next.Month() && date.Day() == 15 {
		return true
	}

	return false
}

func withinBusinessHours(hour, minute int) bool {
	m := hour*60 + minute
	return m >= businessDayStartMinutes && m <= businessDayEndMinutes
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// beforeToday compares at calendar-day granularity: booking for later today
// is allowed, yesterday is not.
func beforeToday(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
