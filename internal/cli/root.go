package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Scenarios service.ScenarioService
	Items     service.ItemService
	Settings  service.SettingsService
	Estimate  service.EstimateService
	Capacity  service.CapacityService
	Import    service.ImportService

	// HTTPAddr is where "serve" listens.
	HTTPAddr string
	// Logger is used by long-running commands; the zero value discards.
	Logger zerolog.Logger

	// IsInteractive reports whether stdin is a terminal, enabling forms.
	IsInteractive func() bool

	// Bootstrap runs after flags are parsed and before any command. It
	// configures logging and wires the services above. Nil when the
	// services are already set, as in tests.
	Bootstrap func(ctx context.Context, app *App, verbose bool) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "capplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "capplan",
		Short:         "Design capacity planning: size roadmap items and find the cut line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap != nil {
				if err := app.Bootstrap(cmd.Context(), app, verbose); err != nil {
					return err
				}
			} else if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newScenarioCmd(app),
		newItemCmd(app),
		newSettingsCmd(app),
		newEstimateCmd(app),
		newSummaryCmd(app),
		newServeCmd(app),
	)

	return root
}
