package sprint

import (
	"slices"
	"time"
)

// Phase tags which part of a sprint cycle a date belongs to. The numeric
// order doubles as display precedence: development < qa < release.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseDevelopment
	PhaseQA
	PhaseRelease
)

func (p Phase) String() string {
	switch p {
	case PhaseDevelopment:
		return "development"
	case PhaseQA:
		return "qa"
	case PhaseRelease:
		return "release"
	default:
		return "none"
	}
}

// MarshalText makes Phase values render as their names in JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// MaxEntriesPerDay caps how many sprints may claim a single calendar day in
// a classification. Overlapping cadences can pile arbitrarily many sprints
// onto one date; the display must not grow without bound.
const MaxEntriesPerDay = 3

// Entry is one sprint's claim on a probe date.
type Entry struct {
	Phase    Phase     `json:"phase"`
	SprintID string    `json:"sprintId"`
	Release  time.Time `json:"release"`
	Label    string    `json:"label"`
}

// PhaseOf tests probe against a single range. The development window, the QA
// window and the release day are disjoint within one range, so the first hit
// is the only hit.
func PhaseOf(probe time.Time, r Range) Phase {
	d := Day(probe)
	switch {
	case !d.Before(r.DevStart) && !d.After(r.DevEnd):
		return PhaseDevelopment
	case !d.Before(r.QAStart) && !d.After(r.QAEnd):
		return PhaseQA
	case SameDay(d, r.Release):
		return PhaseRelease
	default:
		return PhaseNone
	}
}

// Classify reports every sprint claiming probe, deduplicated and ordered for
// display: ascending release date, development before qa before release on
// ties. When two entries share a sprint ID the higher-precedence phase wins.
// At most MaxEntriesPerDay entries survive, preferring the sprints releasing
// soonest. An empty range set or an unclaimed probe yields an empty result,
// never an error.
func Classify(probe time.Time, ranges []Range) []Entry {
	d := Day(probe)

	byID := make(map[string]int)
	var entries []Entry
	for _, r := range ranges {
		phase := PhaseOf(d, r)
		if phase == PhaseNone {
			continue
		}
		e := Entry{Phase: phase, SprintID: r.ID(), Release: r.Release, Label: phaseLabel(phase, r)}
		if i, ok := byID[e.SprintID]; ok {
			if phase > entries[i].Phase {
				entries[i] = e
			}
			continue
		}
		byID[e.SprintID] = len(entries)
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, compareEntries)
	if len(entries) > MaxEntriesPerDay {
		entries = entries[:MaxEntriesPerDay]
	}
	return entries
}

// compareEntries orders by release date ascending, then phase precedence.
func compareEntries(a, b Entry) int {
	if c := a.Release.Compare(b.Release); c != 0 {
		return c
	}
	return int(a.Phase) - int(b.Phase)
}

// phaseLabel pairs a short phase tag with the owning sprint's release day,
// e.g. "dev 03/11", so overlapping sprints stay distinguishable inside one
// day cell.
func phaseLabel(p Phase, r Range) string {
	tag := "dev"
	switch p {
	case PhaseQA:
		tag = "qa"
	case PhaseRelease:
		tag = "rel"
	}
	return tag + " " + r.Release.Format("01/02")
}
