package visuals

import (
	"strings"
	"testing"
	"time"

	"sprintcal/internal/sprint"
)

func TestGenerateSprintGantt(t *testing.T) {
	c, err := sprint.NewCadence(2, 7, 7)
	if err != nil {
		t.Fatalf("NewCadence failed: %v", err)
	}
	ranges := c.ExpandForward(time.Date(2025, time.February, 25, 0, 0, 0, 0, time.UTC), 2)

	chart := GenerateSprintGantt(ranges)

	if !strings.HasPrefix(chart, "```mermaid\ngantt\n") {
		t.Errorf("chart does not open a mermaid gantt block:\n%s", chart)
	}
	if !strings.HasSuffix(chart, "```") {
		t.Errorf("chart is not fenced:\n%s", chart)
	}

	for _, want := range []string{
		"section 2025-03-11",
		"section 2025-03-18",
		"Development :dev2025-03-11, 2025-02-25, 7d",
		"QA :qa2025-03-11, 2025-03-04, 7d",
		"Release :milestone, rel2025-03-11, 2025-03-11, 1d",
	} {
		if !strings.Contains(chart, want) {
			t.Errorf("chart missing %q:\n%s", want, chart)
		}
	}
}

func TestGenerateSprintGanttEmpty(t *testing.T) {
	if got := GenerateSprintGantt(nil); got != "" {
		t.Errorf("GenerateSprintGantt(nil) = %q, want empty", got)
	}
}
