package cmd

import (
	"odgen/pkg/config"
	"odgen/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick a roster, preview its statistics, and generate the Official Duty list or calendar interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return tui.RunTUI(newGenerator(cfg))
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
