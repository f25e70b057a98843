package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"odgen/pkg/client"
	"odgen/pkg/config"
	"odgen/pkg/exporter"
	"odgen/pkg/roster"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an Official Duty list document from a roster",
	Long: `Read a roster file (.csv or .xlsx) and write the Official Duty list as a
.docx document. When --date is given the event schedule is applied to every
participant and the roster does not need Date/From/To columns.`,
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

		if remote, _ := cmd.Flags().GetString("server"); remote != "" {
			return generateRemote(remote, input, output, cfg, rawEventFromFlags(cmd))
		}

		if output == "" {
			eventDate := ""
			if ev != nil {
				eventDate = ev.Date
			}
			output = filepath.Join(cfg.ResolveOutputDir(), exporter.FileName(time.Now(), eventDate))
		}

		var (
			records []roster.Record
			data    []byte
			genErr  error
		)

		_ = spinner.New().
			Title(fmt.Sprintf("Generating Official Duty list from %s...", input)).
			Action(func() {
				records, genErr = roster.ReadFile(input, roster.Options{Event: ev})
				if genErr != nil {
					return
				}
				data, genErr = newGenerator(cfg).Generate(records)
			}).
			Run()

		if genErr != nil {
			return fmt.Errorf("failed to generate report: %w", genErr)
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Successfully wrote %d participants to %s\n", len(records), output)
		return nil
	},
}

// generateRemote uploads the roster to an odgen server and saves its response.
func generateRemote(remote, input, output string, cfg *config.AppConfig, ev *roster.Event) error {
	var doc *client.Document
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Uploading %s to %s...", input, remote)).
		Action(func() {
			doc, err = client.NewClient(remote).Generate(input, ev)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if output == "" {
		output = remoteOutputPath(cfg.ResolveOutputDir(), doc.FileName, ev, time.Now())
	}
	if err := os.WriteFile(output, doc.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Successfully wrote %s (generated by %s)\n", output, remote)
	return nil
}

// remoteOutputPath places a server-named document in dir, falling back to a
// locally generated name when the server supplied none.
func remoteOutputPath(dir, name string, ev *roster.Event, now time.Time) string {
	if name == "" {
		eventDate := ""
		if ev != nil {
			eventDate = ev.Date
		}
		name = exporter.FileName(now, eventDate)
	}
	return filepath.Join(dir, filepath.Base(name))
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "", "Roster file (.csv or .xlsx)")
	generateCmd.Flags().StringP("output", "o", "", "Output .docx path (default: generated name in the output directory)")
	generateCmd.Flags().String("server", "", "Generate on a remote odgen server, e.g. http://localhost:8080")
	addEventFlags(generateCmd)
	generateCmd.MarkFlagRequired("input")
}
