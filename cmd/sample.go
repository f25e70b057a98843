package cmd

import (
	"fmt"
	"os"

	"odgen/pkg/roster"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write an example roster CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		if output == "-" {
			return roster.WriteCSV(os.Stdout, roster.SampleRecords())
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := roster.WriteCSV(file, roster.SampleRecords()); err != nil {
			return err
		}

		fmt.Printf("Sample roster written to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringP("output", "o", "sample_od_data.csv", "Output file path, or - for stdout")
}
