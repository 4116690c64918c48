package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/service"
	"github.com/alexanderramin/trainingtask/internal/settings"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// SettingsManager is the part of settings.Manager the CLI uses.
type SettingsManager interface {
	Resolve(ctx context.Context) (domain.Settings, settings.Source, error)
	Defaults() (domain.Settings, error)
	SaveUserSettings(ctx context.Context, s domain.Settings) error
	ResetUserSettings(ctx context.Context) error
}

// App holds everything CLI commands call into.
type App struct {
	Settings  SettingsManager
	Tasks     service.TaskService
	Editor    service.TaskEditor
	Directory service.DirectoryService

	// Serve runs the task server on addr until ctx is done.
	Serve func(ctx context.Context, addr string) error

	// Import loads a seed file into the task server's database.
	Import func(ctx context.Context, path string) (*service.ImportResult, error)

	// IsInteractive reports whether forms and the browser may be shown.
	// Nil means never.
	IsInteractive func() bool

	// RunForm runs a huh form. Nil runs it against the terminal.
	RunForm func(f *huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

// NewRootCmd creates the top-level "trainingtask" command and registers
// all subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trainingtask",
		Short:         "Track tasks, projects and employees on a task server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSettingsCmd(app),
		newTaskCmd(app),
		newProjectCmd(app),
		newEmployeeCmd(app),
		newServeCmd(app),
		newImportCmd(app),
	)
	return root
}

// Execute runs the root command and prints any error in the CLI's error
// style. It returns the error for the exit code.
func Execute(ctx context.Context, app *App) error {
	root := NewRootCmd(app)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), formatter.FormatError(err))
	}
	return err
}
