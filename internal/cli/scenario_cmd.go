package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/contract"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"sc"},
		Short:   "Manage planning scenarios",
	}

	cmd.AddCommand(
		newScenarioAddCmd(app),
		newScenarioListCmd(app),
		newScenarioInspectCmd(app),
		newScenarioUpdateCmd(app),
		newScenarioArchiveCmd(app),
		newScenarioUnarchiveCmd(app),
		newScenarioRemoveCmd(app),
	)

	return cmd
}

func newScenarioAddCmd(app *App) *cobra.Command {
	var req contract.CreateScenarioRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := optionalFloat(cmd.Flags(), "weeks")
			if err != nil {
				return err
			}
			req.WeeksPerPeriod = weeks

			sc, err := app.Scenarios.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created scenario %s [%s]\n", sc.Name, sc.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Scenario name")
	cmd.Flags().StringVar(&req.PlanningPeriod, "period", "", "Planning period label (e.g. 2026-Q1)")
	cmd.Flags().Float64Var(&req.UXDesigners, "ux", 0, "UX designers available")
	cmd.Flags().Float64Var(&req.ContentDesigners, "content", 0, "Content designers available")
	cmd.Flags().Float64("weeks", 13, "Weeks per period")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := app.Scenarios.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioList(scenarios))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived scenarios")

	return cmd
}

func newScenarioInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SCENARIO",
		Short: "Show scenario details and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sc, err := app.Scenarios.GetByID(ctx, id)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByScenario(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScenarioInspect(sc, items))
			return nil
		},
	}
}

func newScenarioUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update SCENARIO",
		Short: "Update scenario fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScenarioID(ctx, app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			req := contract.UpdateScenarioRequest{
				Name:           optionalString(flags, "name"),
				PlanningPeriod: optionalString(flags, "period"),
			}
			if req.UXDesigners, err = optionalFloat(flags, "ux"); err != nil {
				return err
			}
			if req.ContentDesigners, err = optionalFloat(flags, "content"); err != nil {
				return err
			}
			if req.WeeksPerPeriod, err = optionalFloat(flags, "weeks"); err != nil {
				return err
			}

			sc, err := app.Scenarios.Update(ctx, id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated scenario %s [%s]\n", sc.Name, sc.DisplayID())
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("period", "", "New planning period label")
	cmd.Flags().Float64("ux", 0, "UX designers available")
	cmd.Flags().Float64("content", 0, "Content designers available")
	cmd.Flags().Float64("weeks", 0, "Weeks per period")

	return cmd
}

func newScenarioArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive SCENARIO",
		Short: "Archive a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveScenarioID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Archive(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived scenario %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newScenarioUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive SCENARIO",
		Short: "Restore an archived scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveScenarioID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Unarchive(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored scenario %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newScenarioRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove SCENARIO",
		Short: "Delete a scenario and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveScenarioID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Delete(cmd.Context(), id, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed scenario %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the scenario is not archived")

	return cmd
}
