package sprint

import (
	"fmt"
	"time"
)

// Cadence is the immutable (weekday, devDays, qaDays) triple defining one
// repeating sprint cycle. The zero value is not usable; build one with
// NewCadence so the invariants hold before any arithmetic runs.
type Cadence struct {
	Weekday time.Weekday `json:"weekday"`
	DevDays int          `json:"devDays"`
	QADays  int          `json:"qaDays"`
}

// NewCadence validates the raw cadence parameters at the boundary. The
// calculator itself assumes these invariants and never re-checks them, so a
// bad weekday or a zero-length window has to be rejected here.
func NewCadence(weekday, devDays, qaDays int) (Cadence, error) {
	if weekday < 0 || weekday > 6 {
		return Cadence{}, fmt.Errorf("weekday must be between 0 (Sunday) and 6 (Saturday), got %d", weekday)
	}
	if devDays < 1 {
		return Cadence{}, fmt.Errorf("development days must be at least 1, got %d", devDays)
	}
	if qaDays < 1 {
		return Cadence{}, fmt.Errorf("qa days must be at least 1, got %d", qaDays)
	}
	return Cadence{Weekday: time.Weekday(weekday), DevDays: devDays, QADays: qaDays}, nil
}

// CycleDays is the total cycle length: development + QA + the release day.
func (c Cadence) CycleDays() int {
	return c.DevDays + c.QADays + 1
}

// Range is one concrete sprint instance anchored to a start date. It is
// immutable once computed; schedules recompute rather than mutate.
type Range struct {
	DevStart time.Time `json:"devStart"`
	DevEnd   time.Time `json:"devEnd"`
	QAStart  time.Time `json:"qaStart"`
	QAEnd    time.Time `json:"qaEnd"`
	Release  time.Time `json:"release"`
}

// ID is the stable identity of a sprint instance across recomputation,
// keyed to its release date.
func (r Range) ID() string {
	return r.Release.Format("2006-01-02")
}

// Calculate derives the full sprint range starting at start: DevDays of
// development, QADays of QA immediately after, then the release day.
//
// The release lands on the same weekday as the development start, at or
// after qaEnd+1. When QA already ends on that weekday the release is the QA
// end itself; pushing it out to the next aligned week would open a dead gap
// in the cycle.
func (c Cadence) Calculate(start time.Time) Range {
	devStart := Day(start)
	devEnd := AddDays(devStart, c.DevDays-1)
	qaStart := AddDays(devEnd, 1)
	qaEnd := AddDays(qaStart, c.QADays-1)

	release := qaEnd
	if qaEnd.Weekday() != devStart.Weekday() {
		next := AddDays(qaEnd, 1)
		offset := (int(devStart.Weekday()) - int(next.Weekday()) + 7) % 7
		release = AddDays(next, offset)
	}

	return Range{
		DevStart: devStart,
		DevEnd:   devEnd,
		QAStart:  qaStart,
		QAEnd:    qaEnd,
		Release:  release,
	}
}

// Next returns the development start of the sprint that follows r.
// Development of sprint N+1 begins exactly when QA of sprint N begins, which
// is what makes neighbouring sprints overlap on the calendar.
func (c Cadence) Next(r Range) time.Time {
	return r.QAStart
}

// ExpandForward chains count sprints starting at anchor, each one anchored
// to its predecessor's QA start. Results are in ascending order; the first
// element is Calculate(anchor).
func (c Cadence) ExpandForward(anchor time.Time, count int) []Range {
	ranges := make([]Range, 0, count)
	start := Day(anchor)
	for i := 0; i < count; i++ {
		r := c.Calculate(start)
		ranges = append(ranges, r)
		start = c.Next(r)
	}
	return ranges
}

// ExpandBackward walks back from anchor in fixed one-week steps, recomputing
// a full range at each stepped-back start date. anchor itself is not
// included. Results come back in ascending chronological order regardless of
// the walk direction.
func (c Cadence) ExpandBackward(anchor time.Time, count int) []Range {
	if count <= 0 {
		return nil
	}
	ranges := make([]Range, count)
	start := Day(anchor)
	for i := count - 1; i >= 0; i-- {
		start = AddDays(start, -7)
		ranges[i] = c.Calculate(start)
	}
	return ranges
}
