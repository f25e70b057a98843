package cmd

import (
	"fmt"

	"odgen/pkg/client"
	"odgen/pkg/config"
	"odgen/pkg/roster"
	"odgen/pkg/tui"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show participant counts for a roster",
	Long:  `Preview a roster before generating: total participants plus counts per branch and per semester.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ev, err := eventFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		if remote, _ := cmd.Flags().GetString("server"); remote != "" {
			summary, err := client.NewClient(remote).Preview(input, rawEventFromFlags(cmd))
			if err != nil {
				return err
			}
			fmt.Print(tui.RenderSummary(*summary))
			return nil
		}

		records, err := roster.ReadFile(input, roster.Options{Event: ev})
		if err != nil {
			return err
		}

		fmt.Print(tui.RenderSummary(roster.Summarize(records)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("input", "i", "", "Roster file (.csv or .xlsx)")
	statsCmd.Flags().String("server", "", "Preview on a remote odgen server, e.g. http://localhost:8080")
	addEventFlags(statsCmd)
	statsCmd.MarkFlagRequired("input")
}
