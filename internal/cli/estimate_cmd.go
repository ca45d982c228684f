package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
)

func newEstimateCmd(app *App) *cobra.Command {
	var (
		req    contract.EstimateRequest
		scores scoresFlag
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Preview the size band and weeks for a set of scores",
		Example: `  capplan estimate --role ux --score productRisk=4,problemAmbiguity=3,discoveryDepth=2
  capplan estimate --role content --focus 2 --intake pm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req.Scores = scores.scores
			focus, err := optionalFloat(cmd.Flags(), "focus")
			if err != nil {
				return err
			}
			req.FocusOverride = focus

			if len(req.Scores) == 0 && focus == nil && app.interactive() {
				role, err := domain.ParseRole(req.Role)
				if err != nil {
					return err
				}
				if req.Scores, err = promptScores(ctx, app, role, nil); err != nil {
					return err
				}
			}

			resp, err := app.Estimate.Estimate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEstimate(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Role, "role", "", "Role to estimate (ux or content)")
	cmd.Flags().Var(&scores, "score", "Factor score, e.g. productRisk=3 (repeatable)")
	cmd.Flags().Float64("focus", 0, "Focus weeks override")
	cmd.Flags().StringVar(&req.IntakeSource, "intake", "", "Who sized the item (designer or pm)")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
