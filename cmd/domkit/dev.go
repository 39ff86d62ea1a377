package main

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/app"
	"github.com/domkit-dev/domkit/internal/build"
	"github.com/domkit-dev/domkit/internal/dev"
	"github.com/domkit-dev/domkit/internal/errors"
)

func devCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with live reload.

The dev server builds the site, serves the output directory, watches
the project for changes and reloads connected browsers after each
successful rebuild. Build errors are shown as an in-page overlay.

Examples:
  domkit dev
  domkit dev --port=8080
  domkit dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := exec.LookPath("go"); err != nil {
				return errors.New("E143").Wrap(err)
			}

			cfg, err := loadProject()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}

			out := cmd.OutOrStdout()
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			server := dev.NewServer(dev.ServerOptions{
				Config: cfg,
				Builder: build.New(cfg, build.Options{
					Boot:       app.Boot,
					LiveReload: cfg.HotReloadEnabled(),
					Logger:     logger,
				}),
				Logger: logger,
				OnBuildComplete: func(result dev.BuildResult) {
					if result.Success {
						success(out, "Built %d pages in %s", result.Pages, result.Duration.Round(time.Millisecond))
					}
				},
				OnReload: func(clients int) {
					success(out, "Reloaded %d browsers", clients)
				},
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info(out, "Serving %s on %s", cfg.Build.Output, cfg.DevURL())
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from domkit.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domkit.yaml)")

	return cmd
}
