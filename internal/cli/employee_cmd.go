package cli

import (
	"fmt"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}
	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
	)
	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var e domain.Employee

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Directory.AddEmployee(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created employee %s %s\n", formatter.Bold(created.FullName()), formatter.TruncID(created.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&e.LastName, "last", "", "Last name")
	cmd.Flags().StringVar(&e.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&e.Patronymic, "patronymic", "", "Patronymic")
	cmd.Flags().StringVar(&e.Position, "position", "", "Job title")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("first")
	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Directory.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmployeeList(employees))
			return nil
		},
	}
}
