package commands

import (
	"fmt"
	"time"

	"sprintcal/internal/config"
	"sprintcal/internal/logging"
	"sprintcal/internal/mcp"
	"sprintcal/internal/sprint"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	// Cadence overrides shared by every subcommand.
	flagWeekday int
	flagDevDays int
	flagQADays  int
)

var rootCmd = &cobra.Command{
	Use:   "sprintcal",
	Short: "Sprintcal computes rolling sprint calendars and serves them over MCP",
	Long: `Sprintcal derives development, QA and release periods from a sprint cadence
(release weekday, development days, QA days), classifies calendar dates against
the overlapping sprint set, and renders multi-month calendar grids.
Run without a subcommand to start the MCP server on stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		if err != nil {
			logging.Init(verbose, "")
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		logging.Init(verbose, cfg.LogDir)

		if err := applyCadenceFlags(cmd); err != nil {
			log.Fatal().Err(err).Msg("Invalid cadence flags")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Stringer("weekday", cfg.Cadence.Weekday).
			Int("devDays", cfg.Cadence.DevDays).
			Int("qaDays", cfg.Cadence.QADays).
			Msg("Sprintcal starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP server starting stdio loop")
		server := mcp.NewServer(cfg)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

// applyCadenceFlags folds explicit cadence flags over the configured
// defaults and re-validates the result.
func applyCadenceFlags(cmd *cobra.Command) error {
	weekday := int(cfg.Cadence.Weekday)
	devDays := cfg.Cadence.DevDays
	qaDays := cfg.Cadence.QADays

	if cmd.Flags().Changed("weekday") {
		weekday = flagWeekday
	}
	if cmd.Flags().Changed("dev-days") {
		devDays = flagDevDays
	}
	if cmd.Flags().Changed("qa-days") {
		qaDays = flagQADays
	}

	cadence, err := sprint.NewCadence(weekday, devDays, qaDays)
	if err != nil {
		return err
	}
	cfg.Cadence = cadence
	return nil
}

// resolveDate parses a YYYY-MM-DD flag value, falling back when empty.
func resolveDate(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return sprint.Day(fallback), nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().IntVar(&flagWeekday, "weekday", config.DefaultWeekday, "release weekday 0-6 (0=Sunday)")
	rootCmd.PersistentFlags().IntVar(&flagDevDays, "dev-days", config.DefaultDevDays, "development window length in days")
	rootCmd.PersistentFlags().IntVar(&flagQADays, "qa-days", config.DefaultQADays, "qa window length in days")
}
