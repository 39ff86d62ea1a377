package main

import (
	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/app"
	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/site"
	"github.com/domkit-dev/domkit/pkg/router"
)

func renderCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "render [route]",
		Short: "Print the pre-rendered HTML for a route",
		Long: `Render one route with the in-memory DOM and print the page.

Unknown routes render the fallback page, as the browser would.

Examples:
  domkit render
  domkit render /login`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := "/"
			if len(args) == 1 {
				route = args[0]
			}

			// Rendering needs no project; use its settings when there is one.
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				cfg = config.New()
			}
			if title == "" {
				title = cfg.Title
			}

			page, err := site.RenderRoute(app.Boot, router.Normalize(route), site.Options{
				Title:  title,
				Logger: newLogger(cmd.ErrOrStderr(), cfg),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(page.HTML)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Document title (default from domkit.yaml)")

	return cmd
}
