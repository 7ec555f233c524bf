package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
)

// pulseHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pulseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func runForm(groups ...*huh.Group) error {
	return huh.NewForm(groups...).WithTheme(pulseHuhTheme()).WithShowHelp(false).Run()
}

// runReportWizard drives an interactive editing loop over a draft report.
// The caller persists the result.
func runReportWizard(rep *domain.Report) error {
	for {
		var action string
		err := runForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Week ending %s", rep.WeekEnding.Format("Jan 2, 2006"))).
				Options(
					huh.NewOption("Add a success", "success"),
					huh.NewOption("Add a challenge", "challenge"),
					huh.NewOption("Edit check-in fields", "fields"),
					huh.NewOption("Set well-being rating", "wellbeing"),
					huh.NewOption("Save and exit", "done"),
				).
				Value(&action),
		))
		if err != nil {
			return err
		}

		switch action {
		case "success", "challenge":
			if err := wizardAddEntry(rep, action == "challenge"); err != nil {
				return err
			}
		case "fields":
			if err := wizardEditFields(rep); err != nil {
				return err
			}
		case "wellbeing":
			if err := wizardWellBeing(rep); err != nil {
				return err
			}
		case "done":
			return nil
		}
	}
}

func wizardAddEntry(rep *domain.Report, challenge bool) error {
	options := make([]huh.Option[domain.SectionKey], 0, len(domain.SectionOrder))
	for _, key := range domain.SectionOrder {
		options = append(options, huh.NewOption(domain.SectionLabels[key], key))
	}

	var section domain.SectionKey
	var text string

	title := "What went well?"
	if challenge {
		title = "What was challenging?"
	}

	err := runForm(
		huh.NewGroup(
			huh.NewSelect[domain.SectionKey]().
				Title("Which section?").
				Options(options...).
				Value(&section),
		),
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Value(&text).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("entry text is required")
					}
					return nil
				}),
		),
	)
	if err != nil {
		return err
	}

	entries := rep.Body[section]
	if challenge {
		entries.Challenges = append(entries.Challenges, domain.Entry{Text: text})
	} else {
		entries.Successes = append(entries.Successes, domain.Entry{Text: text})
	}
	rep.Body[section] = entries
	return nil
}

func wizardEditFields(rep *domain.Report) error {
	return runForm(
		huh.NewGroup(
			huh.NewText().
				Title("Professional development").
				Value(&rep.ProfessionalDevelopment),
			huh.NewText().
				Title("Key topics for the week ahead").
				Value(&rep.KeyTopicsLookahead),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Personal check-in").
				Value(&rep.PersonalCheckIn),
			huh.NewText().
				Title("Concerns for the director").
				Value(&rep.DirectorConcerns),
		),
	)
}

func wizardWellBeing(rep *domain.Report) error {
	current := strconv.Itoa(rep.WellBeingRating)
	options := []huh.Option[string]{
		huh.NewOption("1 - Struggling", "1"),
		huh.NewOption("2 - Below average", "2"),
		huh.NewOption("3 - Okay", "3"),
		huh.NewOption("4 - Good", "4"),
		huh.NewOption("5 - Thriving", "5"),
	}

	rating := current
	err := runForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("How are you doing this week?").
			Options(options...).
			Value(&rating),
	))
	if err != nil {
		return err
	}

	v, err := strconv.Atoi(rating)
	if err != nil || v < 1 || v > 5 {
		return fmt.Errorf("invalid rating %q", rating)
	}
	rep.WellBeingRating = v
	return nil
}
