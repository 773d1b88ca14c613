package commands

import (
	"fmt"
	"os"
	"time"

	"sprintcal/internal/render"
	"sprintcal/internal/sprint"
	"sprintcal/internal/visuals"

	"github.com/spf13/cobra"
)

var (
	sprintsDate  string
	sprintsCount int
	sprintsBack  int
	sprintsGantt bool
)

var sprintsCmd = &cobra.Command{
	Use:   "sprints",
	Short: "List sprint periods around a date",
	Long: `List sprint ranges anchored to the nearest past release weekday relative to
--date: --back ranges walked backward in one-week steps, then --count ranges
chained forward. With --gantt the list renders as a Mermaid gantt chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		center, err := resolveDate(sprintsDate, time.Now())
		if err != nil {
			return err
		}
		if sprintsCount < 0 || sprintsBack < 0 {
			return fmt.Errorf("--count and --back must not be negative")
		}

		anchor := sprint.NearestWeekday(cfg.Cadence.Weekday, center, sprint.Backward)
		ranges := cfg.Cadence.ExpandBackward(anchor, sprintsBack)
		ranges = append(ranges, cfg.Cadence.ExpandForward(anchor, sprintsCount)...)

		if sprintsGantt {
			fmt.Println(visuals.GenerateSprintGantt(ranges))
			return nil
		}
		return render.Sprints(os.Stdout, ranges)
	},
}

func init() {
	sprintsCmd.Flags().StringVar(&sprintsDate, "date", "", "anchor date YYYY-MM-DD (default today)")
	sprintsCmd.Flags().IntVar(&sprintsCount, "count", 5, "number of sprints to chain forward")
	sprintsCmd.Flags().IntVar(&sprintsBack, "back", 0, "number of sprints to walk backward")
	sprintsCmd.Flags().BoolVar(&sprintsGantt, "gantt", false, "render as a Mermaid gantt chart")
	rootCmd.AddCommand(sprintsCmd)
}
