package cmd

import (
	"fmt"
	"os"

	"odgen/pkg/config"
	"odgen/pkg/exporter"
	"odgen/pkg/roster"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export the roster's duty slots to an ICS file",
	Long:  `Write one calendar event per distinct date and time slot in the roster, listing how many participants of each semester and branch are on duty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ev, err := eventFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		records, err := roster.ReadFile(input, roster.Options{Event: ev})
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		n, err := exporter.GenerateICS(records, file, exporter.ICSOptions{
			DateLayout: cfg.DateLayout,
			TimeLayout: cfg.TimeLayout,
		})
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d duty slots to %s\n", n, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringP("input", "i", "", "Roster file (.csv or .xlsx)")
	calendarCmd.Flags().StringP("output", "o", "od_schedule.ics", "Output file path")
	addEventFlags(calendarCmd)
	calendarCmd.MarkFlagRequired("input")
}
