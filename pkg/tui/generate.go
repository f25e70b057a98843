package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"odgen/pkg/config"
	"odgen/pkg/exporter"
	"odgen/pkg/report"
	"odgen/pkg/roster"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunGenerateTUI walks through picking a roster and writing the OD list document.
func RunGenerateTUI(gen *report.Generator) error {
	fmt.Println(accentStyle.Render("Official Duty List Generator"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, ev, err := promptRoster(cfg)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(errorStyle.Render("The roster has no participants!"))
		return nil
	}

	fmt.Print(RenderSummary(roster.Summarize(records)))

	eventDate := ""
	if ev != nil {
		eventDate = ev.Date
	}
	outputFile := filepath.Join(cfg.ResolveOutputDir(), exporter.FileName(time.Now(), eventDate))

	outForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where do you want to save the document?").
				Value(&outputFile).
				Validate(func(s string) error {
					if !strings.HasSuffix(strings.ToLower(s), ".docx") {
						return fmt.Errorf("file name must end in .docx")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := outForm.Run(); err != nil {
		return err
	}

	var data []byte
	var genErr error

	_ = spinner.New().
		Title("Generating document...").
		Action(func() {
			data, genErr = gen.Generate(records)
		}).
		Run()

	if genErr != nil {
		return fmt.Errorf("failed to generate document: %w", genErr)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully wrote %d participants to %s\n", len(records), outputFile)))
	return nil
}

// RunCalendarTUI exports the duty slots of a roster to an ICS file.
func RunCalendarTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, _, err := promptRoster(cfg)
	if err != nil {
		return err
	}

	outputFile := "od_schedule.ics"
	outForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where do you want to save the .ics file?").
				Value(&outputFile),
		),
	).WithTheme(GetTheme())

	if err := outForm.Run(); err != nil {
		return err
	}

	file, err := os.Create(outputFile)
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

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Exported %d duty slots to %s\n", n, outputFile)))
	return nil
}

// RunStatsTUI previews a roster without generating anything.
func RunStatsTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, _, err := promptRoster(cfg)
	if err != nil {
		return err
	}

	fmt.Print(RenderSummary(roster.Summarize(records)))
	return nil
}

// RunSampleTUI writes the example roster so users can see the expected columns.
func RunSampleTUI() error {
	outputFile := "sample_od_data.csv"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where do you want to save the sample roster?").
				Value(&outputFile),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := roster.WriteCSV(file, roster.SampleRecords()); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Sample roster written to %s\n", outputFile)))
	return nil
}
