package commands

import (
	"os"
	"time"

	"sprintcal/internal/render"
	"sprintcal/internal/sprint"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <date>",
	Short: "Report which sprints claim a calendar date",
	Long: `Classify a date against the sprint schedule around it. Overlapping sprints
can claim the same day; at most three claims are shown, ordered by release
date. A date outside every sprint prints a plain message.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		probe, err := resolveDate(args[0], time.Now())
		if err != nil {
			return err
		}

		sched := sprint.NewSchedule(cfg.Cadence, probe, cfg.DisplayMonths)
		entries := sprint.Classify(probe, sched.Ranges)

		colorize := isatty.IsTerminal(os.Stdout.Fd())
		return render.Entries(os.Stdout, probe, entries, colorize)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
