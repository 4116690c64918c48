package cli

import (
	"fmt"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Seed the task server database from a YAML or JSON file",
		Long: `Load projects, employees and tasks from a seed file into the server's
database in one transaction. Tasks refer to projects and employees by the
ref given in the same file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return fmt.Errorf("import is not available in this build")
			}
			result, err := app.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s projects, %s employees, %s tasks\n",
				formatter.Bold(fmt.Sprint(result.ProjectCount)),
				formatter.Bold(fmt.Sprint(result.EmployeeCount)),
				formatter.Bold(fmt.Sprint(result.TaskCount)))
			return nil
		},
	}
}
