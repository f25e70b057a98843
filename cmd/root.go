package cmd

import (
	"fmt"
	"os"

	"odgen/pkg/config"
	"odgen/pkg/report"
	"odgen/pkg/roster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "odgen",
	Short: "Generate Official Duty lists from participant rosters",
	Long: `odgen turns a roster of event participants (CSV or Excel) into an
Official Duty list document, grouped by semester and branch and ready for
signature.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// labelsFrom maps configured labels; blanks fall back to the report defaults.
func labelsFrom(cfg *config.AppConfig) report.Labels {
	if cfg == nil {
		return report.Labels{}
	}
	return report.Labels{DegreePrefix: cfg.DegreePrefix, SignatureRoles: cfg.SignatureRoles}
}

// newGenerator builds a report generator from the saved configuration.
func newGenerator(cfg *config.AppConfig) *report.Generator {
	return report.NewGenerator(report.WithLabels(labelsFrom(cfg)), report.WithLogger(logger))
}

// eventFromFlags returns the event schedule given on the command line, or nil
// when --date is not set.
func eventFromFlags(cmd *cobra.Command, cfg *config.AppConfig) (*roster.Event, error) {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		return nil, nil
	}
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	ev, err := roster.NewEvent(date, from, to, cfg.DateLayout, cfg.TimeLayout)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// rawEventFromFlags returns the unparsed --date/--from/--to values for a remote
// server to validate with its own layouts.
func rawEventFromFlags(cmd *cobra.Command) *roster.Event {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		return nil
	}
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	return &roster.Event{Date: date, From: from, To: to}
}

func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Event date applied to every participant (overrides the file)")
	cmd.Flags().String("from", "", "Event start time, e.g. 09:00")
	cmd.Flags().String("to", "", "Event end time, e.g. 17:00")
}
