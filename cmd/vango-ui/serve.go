package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/pkg/branding"
	"github.com/vango-dev/vango-ui/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser playground",
		Long: `Run the playground server. The demo page shows buttons, tabs and
click, hover and controlled popovers, all running on the server and
driven over a WebSocket.

Examples:
  vango-ui serve
  vango-ui serve --port=8080
  vango-ui serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			popoverOpts, err := cfg.PopoverOptions()
			if err != nil {
				return err
			}

			srv := server.New(server.Config{
				Address: cfg.Address(),
				Branding: branding.Branding{
					OrganisationID: cfg.Branding.OrganisationID,
					BrandColor:     cfg.Branding.BrandColor,
				},
				Popover: popoverOpts,
			}, server.WithLogger(slog.Default()))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("  Playground: http://%s\n", cfg.Address())
			fmt.Printf("  Metrics:    http://%s/metrics\n\n", cfg.Address())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	return cmd
}
