package render

import (
	"fmt"
	"io"
	"strings"

	"sprintcal/internal/sprint"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Phase colors for console output.
var (
	devColor     = color.New(color.FgCyan)                // development window
	qaColor      = color.New(color.FgYellow)              // qa window
	releaseColor = color.New(color.FgGreen, color.Bold)   // release day
	todayColor   = color.New(color.Bold, color.FgHiWhite) // current day marker
)

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Calendar writes one table per month grid to w. Pass colorize=false when w
// is not a terminal.
func Calendar(w io.Writer, grids []sprint.MonthGrid, colorize bool) error {
	for i, g := range grids {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %d\n", g.Month, g.Year)

		table := tablewriter.NewWriter(w)
		table.Header(weekdayHeader)
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignLeft
		})

		var data [][]string
		for _, week := range g.Weeks {
			row := make([]string, len(week))
			for j, cell := range week {
				row[j] = FormatCell(cell, colorize)
			}
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// FormatCell renders a single day cell: the day number on the first line,
// one phase label per line after it. Days belonging to adjacent months
// render blank to keep the grid readable.
func FormatCell(cell sprint.DayCell, colorize bool) string {
	if !cell.InMonth {
		return ""
	}
	day := fmt.Sprintf("%d", cell.Date.Day())
	if cell.Today {
		day = "*" + day
		if colorize {
			day = todayColor.Sprint(day)
		}
	}
	lines := []string{day}
	for _, e := range cell.Entries {
		lines = append(lines, FormatLabel(e, colorize))
	}
	return strings.Join(lines, "\n")
}

// FormatLabel colors a claim label by phase for console output.
func FormatLabel(e sprint.Entry, colorize bool) string {
	if !colorize {
		return e.Label
	}
	return phasePainter(e.Phase).Sprint(e.Label)
}

// FormatPhase colors a phase name for console output.
func FormatPhase(p sprint.Phase, colorize bool) string {
	if !colorize {
		return p.String()
	}
	return phasePainter(p).Sprint(p.String())
}

func phasePainter(p sprint.Phase) *color.Color {
	switch p {
	case sprint.PhaseRelease:
		return releaseColor
	case sprint.PhaseQA:
		return qaColor
	default:
		return devColor
	}
}
