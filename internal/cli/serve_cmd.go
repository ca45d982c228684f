package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/capplan/internal/web"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && app.HTTPAddr != "" {
				addr = app.HTTPAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(web.Services{
				Scenarios: app.Scenarios,
				Items:     app.Items,
				Settings:  app.Settings,
				Estimate:  app.Estimate,
				Capacity:  app.Capacity,
				Import:    app.Import,
			}, app.Logger)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
