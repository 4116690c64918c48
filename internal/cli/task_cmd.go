package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/taskform"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resolveTaskID accepts a full ID or a unique prefix of one, as shown in
// task listings.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
		newTaskBrowseCmd(app),
	)
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTask(t))
			return nil
		},
	}
}

// taskFlags are the form fields settable from the command line.
type taskFlags struct {
	name, project, employee, status, hours, start, end string
}

func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Task name")
	fs.StringVar(&f.project, "project", "", "Project name")
	fs.StringVar(&f.employee, "employee", "", `Employee full name ("Last First [Patronymic]")`)
	fs.StringVar(&f.status, "status", "", "Status: "+strings.Join(taskform.StatusTitles(), ", "))
	fs.StringVar(&f.hours, "hours", "", "Required hours")
	fs.StringVar(&f.start, "start", "", "Start date (DD/MM/YYYY)")
	fs.StringVar(&f.end, "end", "", "End date (DD/MM/YYYY)")
}

// apply copies every flag the user set onto form and reports whether any was set.
func (f *taskFlags) apply(fs *pflag.FlagSet, form *taskform.Form) bool {
	fields := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"name", f.name, &form.Name},
		{"project", f.project, &form.Project},
		{"employee", f.employee, &form.Employee},
		{"status", f.status, &form.Status},
		{"hours", f.hours, &form.Hours},
		{"start", f.start, &form.StartDate},
		{"end", f.end, &form.EndDate},
	}
	set := false
	for _, fl := range fields {
		if fs.Changed(fl.flag) {
			*fl.dst = fl.value
			set = true
		}
	}
	return set
}

func newTaskAddCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long: "Create a task. Without flags on an interactive terminal a form is shown;\n" +
			"otherwise the start and end dates default to today and today plus the\n" +
			"configured number of days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, ok, err := runTaskEdit(cmd, app, nil, &flags)
			if err != nil || !ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s %s\n", formatter.Bold(saved.Name), formatter.TruncID(saved.ID))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			original, err := app.Tasks.Get(ctx, id)
			if err != nil {
				return err
			}
			saved, ok, err := runTaskEdit(cmd, app, &original, &flags)
			if err != nil || !ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s %s\n", formatter.Bold(saved.Name), formatter.TruncID(saved.ID))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// runTaskEdit drives one edit session: wait for reference data, fill the
// form from flags or an interactive form, then save. ok is false when the
// user cancelled.
func runTaskEdit(cmd *cobra.Command, app *App, original *domain.Task, flags *taskFlags) (domain.Task, bool, error) {
	ctx := cmd.Context()
	session, err := app.Editor.Open(ctx, original)
	if err != nil {
		return domain.Task{}, false, err
	}
	defer session.Cancel()

	if err := session.Wait(ctx); err != nil {
		return domain.Task{}, false, fmt.Errorf("loading projects and employees: %w", err)
	}

	form := session.Form()
	if flags.apply(cmd.Flags(), &form) || !app.interactive() {
		saved, err := session.Save(ctx, form)
		return saved, err == nil, err
	}

	title := "New task"
	if original != nil {
		title = "Edit task"
	}
	for {
		if err := app.runForm(taskFormWizard(title, &form, session.Options())); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return domain.Task{}, false, nil
			}
			return domain.Task{}, false, err
		}
		saved, err := session.Save(ctx, form)
		var fe *taskform.FieldError
		if errors.As(err, &fe) {
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.FormatError(err))
			continue
		}
		return saved, err == nil, err
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newTaskBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; use 'task list'")
			}
			p := tea.NewProgram(
				newTaskBrowser(cmd.Context(), app.Tasks),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}

