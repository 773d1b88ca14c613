package sprint

import "time"

// Schedule couples a cadence with a materialized window of sprint ranges
// wide enough to classify any day in a requested month span. Ranges are
// recomputed per schedule; nothing is persisted between builds.
type Schedule struct {
	Cadence Cadence
	Ranges  []Range
}

// NewSchedule expands enough sprints around center to cover a span of months
// display months centered on it. The expansion anchor is pinned to the
// nearest past occurrence of the cadence weekday relative to center.
func NewSchedule(c Cadence, center time.Time, months int) Schedule {
	spanStart, spanEnd := monthSpan(Day(center), months)
	anchor := NearestWeekday(c.Weekday, Day(center), Backward)

	// One-week back-steps must reach past the span start by a full cycle so
	// sprints begun before the first visible month still claim its days.
	back := DaysBetween(spanStart, anchor)/7 + c.CycleDays()/7 + 2
	// Forward chaining advances one development window per sprint.
	fwd := DaysBetween(anchor, spanEnd)/c.DevDays + 2

	ranges := c.ExpandBackward(anchor, back)
	ranges = append(ranges, c.ExpandForward(anchor, fwd)...)
	return Schedule{Cadence: c, Ranges: ranges}
}

// monthSpan returns the first and last day of the display span: months whole
// calendar months with center's month sitting months/2 in.
func monthSpan(center time.Time, months int) (time.Time, time.Time) {
	if months < 1 {
		months = 1
	}
	first := time.Date(center.Year(), center.Month(), 1, 0, 0, 0, 0, center.Location())
	first = first.AddDate(0, -(months / 2), 0)
	return first, first.AddDate(0, months, -1)
}

// DayCell is one calendar day in a rendered month.
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"inMonth"`
	Today   bool      `json:"today"`
	Entries []Entry   `json:"entries,omitempty"`
}

// MonthGrid is one display month split into Sunday-first week rows of seven
// cells. Leading and trailing cells belonging to adjacent months carry
// InMonth=false but are still classified.
type MonthGrid struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Weeks [][7]DayCell `json:"weeks"`
}

// BuildMonths renders the schedule into the display months around center.
// today is threaded in explicitly so output stays deterministic under test;
// callers pass their own clock.
func (s Schedule) BuildMonths(center, today time.Time, months int) []MonthGrid {
	first, _ := monthSpan(Day(center), months)
	if months < 1 {
		months = 1
	}
	grids := make([]MonthGrid, 0, months)
	for i := 0; i < months; i++ {
		grids = append(grids, s.buildMonth(first.AddDate(0, i, 0), today))
	}
	return grids
}

func (s Schedule) buildMonth(first, today time.Time) MonthGrid {
	grid := MonthGrid{Year: first.Year(), Month: first.Month()}
	monthEnd := first.AddDate(0, 1, -1)

	cur := AddDays(first, -int(first.Weekday()))
	for !cur.After(monthEnd) {
		var week [7]DayCell
		for i := range week {
			week[i] = DayCell{
				Date:    cur,
				InMonth: cur.Month() == first.Month() && cur.Year() == first.Year(),
				Today:   SameDay(cur, today),
				Entries: Classify(cur, s.Ranges),
			}
			cur = AddDays(cur, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
