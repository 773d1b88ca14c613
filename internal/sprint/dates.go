package sprint

import (
	"math"
	"time"
)

// Direction selects which way NearestWeekday scans from its base date.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Day strips the time-of-day component, leaving midnight in t's location.
// Callers routinely pass "now" timestamps carrying live clock time, so every
// comparison site in this package goes through Day rather than trusting its
// inputs to be pre-normalized.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n calendar days. n may be negative. AddDate rolls
// across month and year boundaries with proper calendar rules.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day, ignoring
// any time-of-day component.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b is earlier. Rounding absorbs DST-shortened days.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(Day(b).Sub(Day(a)).Hours() / 24))
}

// NearestWeekday returns the closest date to from (inclusive of from itself,
// per direction) whose weekday equals target.
//
// Backward treats a matching from as the answer: today counts as the nearest
// past occurrence. Forward skips a matching from to the occurrence a full
// week later, so chained forward scans never produce a zero-length step.
func NearestWeekday(target time.Weekday, from time.Time, dir Direction) time.Time {
	base := Day(from)
	offset := (int(target) - int(base.Weekday()) + 7) % 7
	if dir == Forward {
		if offset == 0 {
			offset = 7
		}
		return AddDays(base, offset)
	}
	if offset == 0 {
		return base
	}
	return AddDays(base, offset-7)
}
