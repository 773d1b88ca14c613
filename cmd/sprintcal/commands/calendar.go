package commands

import (
	"os"
	"time"

	"sprintcal/internal/config"
	"sprintcal/internal/render"
	"sprintcal/internal/sprint"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	calendarDate   string
	calendarMonths int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Render the sprint calendar as month grids",
	Long: `Render one table per display month, with each day cell listing the sprints
claiming it (development, qa or release). The span is centered on --date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		center, err := resolveDate(calendarDate, now)
		if err != nil {
			return err
		}

		months := cfg.DisplayMonths
		if cmd.Flags().Changed("months") {
			months = calendarMonths
		}

		sched := sprint.NewSchedule(cfg.Cadence, center, months)
		grids := sched.BuildMonths(center, now, months)

		colorize := isatty.IsTerminal(os.Stdout.Fd())
		return render.Calendar(os.Stdout, grids, colorize)
	},
}

func init() {
	calendarCmd.Flags().StringVar(&calendarDate, "date", "", "center date YYYY-MM-DD (default today)")
	calendarCmd.Flags().IntVar(&calendarMonths, "months", config.DefaultDisplayMonths, "number of months to display")
	rootCmd.AddCommand(calendarCmd)
}
