package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/settings"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the connection settings",
	}
	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsResetCmd(app),
	)
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				s, err := app.Settings.Defaults()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s, "packaged defaults"))
				return nil
			}
			s, source, err := app.Settings.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s, string(source)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Show the packaged defaults instead")
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var url string
	var records, days int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save user settings",
		Long: "Save user settings. Unspecified fields keep their current effective value;\n" +
			"the result is stored as one complete record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Unusable defaults leave an empty record to fill in.
			s, _, err := app.Settings.Resolve(ctx)
			blank := errors.Is(err, settings.ErrConfiguration)
			if err != nil && !blank {
				return err
			}
			if blank {
				s = domain.Settings{}
			}

			flags := cmd.Flags()
			anyFlag := flags.Changed("url") || flags.Changed("records") || flags.Changed("days")
			switch {
			case anyFlag:
				if flags.Changed("url") {
					s.URL = strings.TrimSpace(url)
				}
				if flags.Changed("records") {
					s.MaxRecords = records
				}
				if flags.Changed("days") {
					s.MaxDays = days
				}
			case app.interactive():
				u, r, d := s.URL, strconv.Itoa(s.MaxRecords), strconv.Itoa(s.MaxDays)
				if blank {
					r, d = "", ""
				}
				if err := app.runForm(settingsWizard(&u, &r, &d)); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
				if s, err = settingsFromForm(u, r, d); err != nil {
					return err
				}
			default:
				return fmt.Errorf("nothing to set: pass --url, --records or --days")
			}

			if err := app.Settings.SaveUserSettings(ctx, s); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("Settings saved."))
			fmt.Fprint(out, formatter.FormatSettings(s, "user"))
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Task server URL")
	cmd.Flags().IntVar(&records, "records", 0, "Maximum records fetched per list")
	cmd.Flags().IntVar(&days, "days", 0, "Default task length in days")
	return cmd
}

// settingsFromForm converts the raw wizard values into a settings record.
func settingsFromForm(url, records, days string) (domain.Settings, error) {
	r, err := strconv.Atoi(strings.TrimSpace(records))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("max records %q is not a number", records)
	}
	d, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("max days %q is not a number", days)
	}
	return domain.Settings{URL: strings.TrimSpace(url), MaxRecords: r, MaxDays: d}, nil
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop user settings and use the packaged defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.ResetUserSettings(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Settings reset to defaults."))
			return nil
		},
	}
}
