package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/app"
	"github.com/domkit-dev/domkit/internal/site"
	"github.com/domkit-dev/domkit/pkg/dom/memdom"
	"github.com/domkit-dev/domkit/pkg/router"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the app's routes",
		Long:  `List every registered route, its fragment URL and the file it is pre-rendered to.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := app.Boot(memdom.NewWindow(""), router.WithLogger(newLogger(cmd.ErrOrStderr(), nil)))
			defer r.Stop()
			table := r.Table()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-14s %s\n", "ROUTE", "URL", "FILE")
			for _, path := range table.Paths() {
				marker := ""
				if path == table.Fallback() {
					marker = " (fallback)"
				}
				fmt.Fprintf(out, "%-12s %-14s %s%s\n", path, router.Href(path), site.PageFile(path), marker)
			}
			return nil
		},
	}
}
