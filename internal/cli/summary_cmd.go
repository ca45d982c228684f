package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary SCENARIO",
		Short: "Compare demand to capacity and show the cut line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			summary, err := app.Capacity.Summary(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(summary))
			return nil
		},
	}
}
