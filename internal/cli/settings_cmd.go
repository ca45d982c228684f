package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or tune the estimation model",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsUnsetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective model and stored overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(view))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Override a model parameter",
		Long: `Keys:
  time_model.focusTimeRatio          share of work time spent designing (clamped to 0.4-0.9)
  effort_model.pmIntakeMultiplier    scale for PM-sized items (clamped to 0.5-2)
  size_bands.<xs|s|m|l|xl>           upper score bound of a band
  effort_model.ux.<factor>           UX factor weight
  effort_model.content.<factor>      content factor weight`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value for %s: %w", args[0], err)
			}
			view, err := app.Settings.Set(cmd.Context(), args[0], value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], formatter.FormatNumber(value))
			for _, w := range view.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("warning: "+w))
			}
			return nil
		},
	}
}

func newSettingsUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Restore a model parameter to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Settings.Unset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])
			return nil
		},
	}
}
