package sprint

import (
	"testing"
	"time"
)

func TestNewScheduleCoversSpan(t *testing.T) {
	c := mustCadence(t, 2, 7, 7)
	center := date(2025, time.March, 15)

	s := NewSchedule(c, center, 3)
	if len(s.Ranges) == 0 {
		t.Fatal("NewSchedule() produced no ranges")
	}

	spanStart, spanEnd := monthSpan(center, 3)
	if !spanStart.Equal(date(2025, time.February, 1)) || !spanEnd.Equal(date(2025, time.April, 30)) {
		t.Fatalf("monthSpan() = %v..%v, want 2025-02-01..2025-04-30", spanStart, spanEnd)
	}

	first, last := s.Ranges[0], s.Ranges[len(s.Ranges)-1]
	if first.DevStart.After(spanStart) {
		t.Errorf("earliest range starts %v, after span start %v", first.DevStart, spanStart)
	}
	if last.Release.Before(spanEnd) {
		t.Errorf("latest range releases %v, before span end %v", last.Release, spanEnd)
	}

	for i := 1; i < len(s.Ranges); i++ {
		if s.Ranges[i].DevStart.Before(s.Ranges[i-1].DevStart) {
			t.Errorf("ranges out of order at %d: %v before %v", i, s.Ranges[i].DevStart, s.Ranges[i-1].DevStart)
		}
	}
}

func TestBuildMonths(t *testing.T) {
	c := mustCadence(t, 2, 7, 7)
	center := date(2025, time.March, 15)
	today := date(2025, time.March, 15)

	s := NewSchedule(c, center, 3)
	grids := s.BuildMonths(center, today, 3)

	if len(grids) != 3 {
		t.Fatalf("BuildMonths() returned %d grids, want 3", len(grids))
	}
	wantMonths := []time.Month{time.February, time.March, time.April}
	for i, g := range grids {
		if g.Year != 2025 || g.Month != wantMonths[i] {
			t.Errorf("grid %d = %v %d, want %v 2025", i, g.Month, g.Year, wantMonths[i])
		}
		for w, week := range g.Weeks {
			if week[0].Date.Weekday() != time.Sunday {
				t.Errorf("grid %d week %d starts on %v, want Sunday", i, w, week[0].Date.Weekday())
			}
			for d, cell := range week {
				inMonth := cell.Date.Month() == g.Month && cell.Date.Year() == g.Year
				if cell.InMonth != inMonth {
					t.Errorf("grid %d week %d day %d: InMonth = %v for %v", i, w, d, cell.InMonth, cell.Date)
				}
			}
		}
	}

	march := grids[1]
	if march.Weeks[0][6].Date.Day() != 1 {
		t.Errorf("March grid first Saturday = %v, want the 1st", march.Weeks[0][6].Date)
	}
}

func TestBuildMonthsClassifiesReleaseDay(t *testing.T) {
	c := mustCadence(t, 2, 7, 7)
	center := date(2025, time.March, 15)

	s := NewSchedule(c, center, 3)
	grids := s.BuildMonths(center, center, 3)

	cell, ok := findCell(grids, date(2025, time.March, 11))
	if !ok {
		t.Fatal("2025-03-11 not present in any grid")
	}
	if len(cell.Entries) == 0 {
		t.Fatal("release day carries no entries")
	}
	if cell.Entries[0].Phase != PhaseRelease || cell.Entries[0].SprintID != "2025-03-11" {
		t.Errorf("first entry = %+v, want the 2025-03-11 release", cell.Entries[0])
	}
	// With weekly back-steps and QA-start chaining the same day is also QA
	// of the next sprint and development of the one after.
	if len(cell.Entries) != 3 {
		t.Errorf("release day carries %d entries, want 3: %+v", len(cell.Entries), cell.Entries)
	}
}

func TestBuildMonthsMarksToday(t *testing.T) {
	c := mustCadence(t, 2, 7, 7)
	center := date(2025, time.March, 15)
	today := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	grids := NewSchedule(c, center, 1).BuildMonths(center, today, 1)

	found := 0
	for _, g := range grids {
		for _, week := range g.Weeks {
			for _, cell := range week {
				if cell.Today {
					found++
					if !SameDay(cell.Date, today) {
						t.Errorf("today flag on %v", cell.Date)
					}
				}
			}
		}
	}
	if found != 1 {
		t.Errorf("today marked %d times, want exactly once", found)
	}
}

func findCell(grids []MonthGrid, day time.Time) (DayCell, bool) {
	for _, g := range grids {
		for _, week := range g.Weeks {
			for _, cell := range week {
				if cell.InMonth && SameDay(cell.Date, day) {
					return cell, true
				}
			}
		}
	}
	return DayCell{}, false
}
