package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"odgen/pkg/config"
	"odgen/pkg/roster"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// promptRoster asks for a roster file and, when the file has no schedule
// columns, the event date and times. It returns the parsed records.
func promptRoster(cfg *config.AppConfig) ([]roster.Record, *roster.Event, error) {
	var (
		path        string
		hasSchedule = true
	)

	fileForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to the participant roster").
				Description("CSV or Excel (.xlsx) with Name, Registration Number, Section, Branch and Semester columns.").
				Placeholder("participants.csv").
				Value(&path).
				Validate(validateRosterPath),
			huh.NewConfirm().
				Title("Does the file contain Date, From and To columns?").
				Affirmative("Yes").
				Negative("No, enter the schedule").
				Value(&hasSchedule),
		),
	).WithTheme(GetTheme())

	if err := fileForm.Run(); err != nil {
		return nil, nil, err
	}

	var ev *roster.Event
	if !hasSchedule {
		var date, from, to string

		scheduleForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Event date").
					Placeholder("2024-01-15").
					Value(&date).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return roster.ErrEventDateRequired
						}
						return nil
					}),
				huh.NewInput().
					Title("From").
					Placeholder("09:00").
					Value(&from),
				huh.NewInput().
					Title("To").
					Placeholder("17:00").
					Value(&to),
			),
		).WithTheme(GetTheme())

		if err := scheduleForm.Run(); err != nil {
			return nil, nil, err
		}

		parsed, err := roster.NewEvent(date, from, to, cfg.DateLayout, cfg.TimeLayout)
		if err != nil {
			return nil, nil, err
		}
		ev = &parsed
	}

	var records []roster.Record
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Reading %s...", filepath.Base(path))).
		Action(func() {
			records, err = roster.ReadFile(strings.TrimSpace(path), roster.Options{Event: ev})
		}).
		Run()

	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return records, ev, nil
}

func validateRosterPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a file path is required")
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".csv", ".xlsx", ".xlsm":
	default:
		return errors.New("must be a .csv or .xlsx file")
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot open %s", s)
	}
	return nil
}
