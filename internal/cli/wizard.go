package cli

import (
	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/service"
	"github.com/alexanderramin/trainingtask/internal/taskform"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formTheme styles huh forms with the formatter palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

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
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormWizard binds every task field to f. Project, employee and
// status are pickers over opts; the rest are free text, validated again
// by the assembler on save.
func taskFormWizard(title string, f *taskform.Form, opts service.Options) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(validateRequired),
			pickerSelect("Project", opts.Projects, &f.Project),
			pickerSelect("Employee", opts.Employees, &f.Employee),
			pickerSelect("Status", opts.Statuses, &f.Status),
		),
		huh.NewGroup(
			hoursInput(&f.Hours),
			dateInput("Start date", &f.StartDate),
			dateInput("End date", &f.EndDate),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

// settingsWizard edits the three settings fields as text.
func settingsWizard(url, records, days *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server URL").
				Placeholder("http://localhost:8080").
				Value(url).
				Validate(validateRequired),
			huh.NewInput().
				Title("Max records per list").
				Value(records).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Default task length (days)").
				Value(days).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

// pickerSelect offers options and keeps the current value selected when
// it is one of them.
func pickerSelect(title string, options []string, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}
