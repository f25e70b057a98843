package tui

import (
	"fmt"
	"strings"

	"odgen/pkg/config"
	"odgen/pkg/report"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Output Directory", "output"),
						huh.NewOption("Set Degree Prefix", "degree"),
						huh.NewOption("Set Signature Roles", "roles"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "output":
			err = runSetOutputDirTUI(cfg)
		case "degree":
			err = runSetDegreeTUI(cfg)
		case "roles":
			err = runSetRolesTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	path, _ := config.Path()
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))

	fmt.Printf("Output Directory: %s\n", cfg.ResolveOutputDir())

	degree := cfg.DegreePrefix
	if degree == "" {
		degree = report.DefaultDegreePrefix + " (default)"
	}
	fmt.Printf("Degree Prefix: %s\n", degree)

	roles := cfg.SignatureRoles
	if len(roles) == 0 {
		roles = report.DefaultSignatureRoles
	}
	fmt.Printf("Signature Roles: %s\n", strings.Join(roles, ", "))
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
}

func runSetOutputDirTUI(cfg *config.AppConfig) error {
	input := cfg.OutputDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Directory for generated documents").
				Description("Leave empty to write into the current directory.").
				Placeholder(".").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputDir = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Output directory set to: %s\n", cfg.ResolveOutputDir())))
	return nil
}

func runSetDegreeTUI(cfg *config.AppConfig) error {
	input := cfg.DegreePrefix

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Degree prefix").
				Description("Printed before the branch in every course label, e.g. \"B.Tech - CSE\".").
				Placeholder(report.DefaultDegreePrefix).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DegreePrefix = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Degree prefix saved.\n"))
	return nil
}

func runSetRolesTUI(cfg *config.AppConfig) error {
	roles := cfg.SignatureRoles
	if len(roles) == 0 {
		roles = report.DefaultSignatureRoles
	}
	input := strings.Join(roles, "\n")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Signature roles").
				Description("One role per line, printed bold under every table.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var parsed []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parsed = append(parsed, line)
		}
	}

	cfg.SignatureRoles = parsed
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d signature roles.\n", len(parsed))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for odgen").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Classic Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
