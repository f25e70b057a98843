package cmd

import (
	"fmt"
	"strings"

	"odgen/pkg/config"
	"odgen/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage odgen configuration",
	Long:  "View or edit your local configuration settings (output directory, degree label, signature roles, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if v, _ := cmd.Flags().GetString("set-output-dir"); v != "" {
			cfg.OutputDir = v
			changed = true
		}
		if v, _ := cmd.Flags().GetString("set-degree"); v != "" {
			cfg.DegreePrefix = v
			changed = true
		}
		if v, _ := cmd.Flags().GetString("set-roles"); v != "" {
			cfg.SignatureRoles = splitRoles(v)
			changed = true
		}
		if v, _ := cmd.Flags().GetString("set-accent"); v != "" {
			cfg.AccentColor = v
			changed = true
		}

		// If no flags are given, launch the interactive TUI flow
		if !changed {
			return tui.RunConfigTUI()
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		path, _ := config.Path()
		fmt.Printf("✅ Configuration saved to %s\n", path)
		return nil
	},
}

func splitRoles(s string) []string {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-output-dir", "", "Directory generated documents are written to")
	configCmd.Flags().String("set-degree", "", "Degree prefix used in course labels, e.g. B.Tech")
	configCmd.Flags().String("set-roles", "", "Comma-separated signature roles")
	configCmd.Flags().String("set-accent", "", "Accent color for the interactive UI")
}
