package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/menttor/menttor-cli/internal/domain"
)

// menttorHuhTheme adapts the base huh theme to the indigo palette.
func menttorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// exportWizardForm builds the three-step export form. The selected values
// land in ref, format, and start.
func exportWizardForm(roadmaps []*domain.Roadmap, ref, format, start *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(roadmaps))
	for _, r := range roadmaps {
		label := fmt.Sprintf("%s (%d modules)", r.Title, len(r.Modules))
		options = append(options, huh.NewOption(label, r.Slug))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Roadmap").
				Options(options...).
				Value(ref),
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("PDF timetable", string(domain.ExportPDF)),
					huh.NewOption("iCalendar feed", string(domain.ExportICS)),
					huh.NewOption("Google Calendar link", string(domain.ExportQuickAdd)),
				).
				Value(format),
			huh.NewInput().
				Title("Start date (blank for tomorrow)").
				Placeholder("2026-09-01").
				Value(start).
				Validate(validateOptionalDate),
		),
	).WithTheme(menttorHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
