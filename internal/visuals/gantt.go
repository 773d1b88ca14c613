package visuals

import (
	"fmt"
	"strings"

	"sprintcal/internal/sprint"
)

// GenerateSprintGantt creates a Mermaid gantt chart for a set of sprint
// ranges, one section per sprint with development, QA and release bars.
// Chat surfaces and Markdown viewers render the fenced block inline.
func GenerateSprintGantt(ranges []sprint.Range) string {
	if len(ranges) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("gantt\n")
	sb.WriteString("    title Sprint Schedule\n")
	sb.WriteString("    dateFormat YYYY-MM-DD\n")
	sb.WriteString("    axisFormat %m/%d\n")

	for _, r := range ranges {
		id := r.ID()
		sb.WriteString(fmt.Sprintf("    section %s\n", id))
		sb.WriteString(fmt.Sprintf("    Development :dev%s, %s, %dd\n",
			id, r.DevStart.Format("2006-01-02"), sprint.DaysBetween(r.DevStart, r.DevEnd)+1))
		sb.WriteString(fmt.Sprintf("    QA :qa%s, %s, %dd\n",
			id, r.QAStart.Format("2006-01-02"), sprint.DaysBetween(r.QAStart, r.QAEnd)+1))
		sb.WriteString(fmt.Sprintf("    Release :milestone, rel%s, %s, 1d\n",
			id, r.Release.Format("2006-01-02")))
	}

	sb.WriteString("```")
	return sb.String()
}
