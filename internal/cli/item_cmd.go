package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage roadmap items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemScoreCmd(app),
		newItemOverrideCmd(app),
		newItemRemoveCmd(app),
		newItemImportCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var (
		scenarioRef   string
		req           contract.CreateItemRequest
		uxScores      scoresFlag
		contentScores scoresFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a roadmap item to a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scenarioID, err := resolveScenarioID(ctx, app, scenarioRef)
			if err != nil {
				return err
			}

			req.UXScores = uxScores.scores
			req.ContentScores = contentScores.scores
			if req.UXFocusOverride, err = optionalFloat(cmd.Flags(), "ux-focus"); err != nil {
				return err
			}
			if req.ContentFocusOverride, err = optionalFloat(cmd.Flags(), "content-focus"); err != nil {
				return err
			}

			item, err := app.Items.Create(ctx, scenarioID, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", item.DisplayKey(), item.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario ID or name")
	cmd.Flags().StringVar(&req.Name, "name", "", "Item name")
	cmd.Flags().StringVar(&req.Initiative, "initiative", "", "Initiative the item belongs to")
	cmd.Flags().IntVar(&req.Priority, "priority", 1, "Priority within the initiative (1 is highest)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Item status (proposed, committed, done, cut)")
	cmd.Flags().StringVar(&req.IntakeSource, "intake", "", "Who sized the item (designer or pm)")
	cmd.Flags().Var(&uxScores, "ux-score", "UX factor score, e.g. productRisk=3 (repeatable)")
	cmd.Flags().Var(&contentScores, "content-score", "Content factor score, e.g. contentSurfaceArea=2 (repeatable)")
	cmd.Flags().Float64("ux-focus", 0, "Override UX focus weeks")
	cmd.Flags().Float64("content-focus", 0, "Override content focus weeks")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var scenarioRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a scenario's items in cut-line order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scenarioID, err := resolveScenarioID(ctx, app, scenarioRef)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByScenario(ctx, scenarioID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario ID or name")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	var scenarioRef string

	cmd := &cobra.Command{
		Use:   "inspect ITEM",
		Short: "Show an item's scores and derived estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0], scenarioRef)
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemDetail(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario for #n item keys")

	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var scenarioRef string

	cmd := &cobra.Command{
		Use:   "update ITEM",
		Short: "Update an item's descriptive fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0], scenarioRef)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			req := contract.UpdateItemRequest{
				Name:         optionalString(flags, "name"),
				Initiative:   optionalString(flags, "initiative"),
				Priority:     optionalInt(flags, "priority"),
				Status:       optionalString(flags, "status"),
				IntakeSource: optionalString(flags, "intake"),
			}

			item, err := app.Items.Update(ctx, id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", item.DisplayKey(), item.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario for #n item keys")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("initiative", "", "New initiative")
	cmd.Flags().Int("priority", 0, "New priority")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("intake", "", "New intake source")

	return cmd
}

func newItemScoreCmd(app *App) *cobra.Command {
	var (
		scenarioRef string
		roleFlag    string
		scores      scoresFlag
		reset       bool
	)

	cmd := &cobra.Command{
		Use:   "score ITEM",
		Short: "Set an item's factor scores for one role",
		Long: `Replaces the role's factor scores. Without --score and on a terminal,
an interactive form asks for each factor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			role, err := domain.ParseRole(roleFlag)
			if err != nil {
				return err
			}
			id, err := resolveItemID(ctx, app, args[0], scenarioRef)
			if err != nil {
				return err
			}

			values := scores.scores
			switch {
			case reset:
				values = nil
			case len(values) == 0:
				if !app.interactive() {
					return fmt.Errorf("no scores given (use --score factor=value or --clear)")
				}
				item, err := app.Items.GetByID(ctx, id)
				if err != nil {
					return err
				}
				if values, err = promptScores(ctx, app, role, item.Estimate(role).Scores); err != nil {
					return err
				}
			}

			item, err := app.Items.Score(ctx, id, role, values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemDetail(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario for #n item keys")
	cmd.Flags().StringVar(&roleFlag, "role", "", "Role to score (ux or content)")
	cmd.Flags().Var(&scores, "score", "Factor score, e.g. productRisk=3 (repeatable)")
	cmd.Flags().BoolVar(&reset, "clear", false, "Remove all scores for the role")
	_ = cmd.MarkFlagRequired("role")
	cmd.MarkFlagsMutuallyExclusive("score", "clear")

	return cmd
}

func newItemOverrideCmd(app *App) *cobra.Command {
	var (
		scenarioRef string
		roleFlag    string
		reset       bool
	)

	cmd := &cobra.Command{
		Use:   "override ITEM",
		Short: "Override the focus weeks for one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			role, err := domain.ParseRole(roleFlag)
			if err != nil {
				return err
			}
			weeks, err := optionalFloat(cmd.Flags(), "weeks")
			if err != nil {
				return err
			}
			if weeks == nil && !reset {
				return fmt.Errorf("either --weeks or --clear is required")
			}
			id, err := resolveItemID(ctx, app, args[0], scenarioRef)
			if err != nil {
				return err
			}

			item, err := app.Items.SetFocusOverride(ctx, id, role, weeks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemDetail(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario for #n item keys")
	cmd.Flags().StringVar(&roleFlag, "role", "", "Role to override (ux or content)")
	cmd.Flags().Float64("weeks", 0, "Focus weeks")
	cmd.Flags().BoolVar(&reset, "clear", false, "Remove the override")
	_ = cmd.MarkFlagRequired("role")
	cmd.MarkFlagsMutuallyExclusive("weeks", "clear")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var scenarioRef string

	cmd := &cobra.Command{
		Use:   "remove ITEM",
		Short: "Delete a roadmap item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0], scenarioRef)
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed item %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Scenario for #n item keys")

	return cmd
}

func newItemImportCmd(app *App) *cobra.Command {
	var scenarioRef string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import items from a JSON file",
		Long: `Imports items in one transaction. Without --scenario the file must
contain a "scenario" block, which is created first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var scenarioID string
			if scenarioRef != "" {
				id, err := resolveScenarioID(ctx, app, scenarioRef)
				if err != nil {
					return err
				}
				scenarioID = id
			}

			result, err := app.Import.ImportItems(ctx, scenarioID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s) into scenario %s\n",
				result.ItemCount, formatter.TruncID(result.ScenarioID))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioRef, "scenario", "", "Existing scenario to import into")

	return cmd
}
