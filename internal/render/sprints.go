package render

import (
	"fmt"
	"io"
	"time"

	"sprintcal/internal/sprint"

	"github.com/olekukonko/tablewriter"
)

const dayFormat = "2006-01-02"

// Sprints writes a sprint list as a table, one row per range.
func Sprints(w io.Writer, ranges []sprint.Range) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Sprint", "Development", "QA", "Release"})

	var data [][]string
	for _, r := range ranges {
		data = append(data, []string{
			r.ID(),
			fmt.Sprintf("%s to %s", r.DevStart.Format(dayFormat), r.DevEnd.Format(dayFormat)),
			fmt.Sprintf("%s to %s", r.QAStart.Format(dayFormat), r.QAEnd.Format(dayFormat)),
			r.Release.Format(dayFormat),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Entries writes a classification result for one probe date. An unclaimed
// date prints a plain message instead of an empty table.
func Entries(w io.Writer, probe time.Time, entries []sprint.Entry, colorize bool) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "No sprint claims %s\n", probe.Format(dayFormat))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Phase", "Sprint", "Release"})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			FormatPhase(e.Phase, colorize),
			e.SprintID,
			e.Release.Format(dayFormat),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
