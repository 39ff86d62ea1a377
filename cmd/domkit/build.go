package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/app"
	"github.com/domkit-dev/domkit/internal/build"
)

func buildCmd() *cobra.Command {
	var (
		output  string
		clean   bool
		noWasm  bool
		tags    []string
		ldflags string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site for deployment",
		Long: `Build the site into the output directory.

This command:
  • Compiles the app to WebAssembly
  • Copies wasm_exec.js from GOROOT
  • Pre-renders every route to HTML
  • Writes a manifest of file hashes

Examples:
  domkit build
  domkit build --output=public
  domkit build --ldflags="-s -w"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Build.Output = output
			}

			out := cmd.OutOrStdout()
			builder := build.New(cfg, build.Options{
				Boot:       app.Boot,
				Tags:       tags,
				LDFlags:    ldflags,
				SkipWasm:   noWasm,
				Logger:     newLogger(cmd.ErrOrStderr(), cfg),
				OnProgress: func(step string) { info(out, step) },
			})

			if clean {
				info(out, "Cleaning output directory...")
				if err := builder.Clean(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := builder.Build(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			success(out, "Build complete in %s", result.Duration.Round(time.Millisecond))
			fmt.Fprintf(out, "\n  %s/\n", cfg.Build.Output)
			fmt.Fprintf(out, "    %-20s %s\n", build.WasmFile, formatBytes(result.WasmSize))
			for _, page := range result.Pages {
				fmt.Fprintf(out, "    %s\n", page)
			}
			fmt.Fprintf(out, "    %s\n\n", build.ManifestFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from domkit.yaml)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")
	cmd.Flags().BoolVar(&noWasm, "no-wasm", false, "Reuse the existing app.wasm and only re-render pages")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Build tags (default from domkit.yaml)")
	cmd.Flags().StringVar(&ldflags, "ldflags", "", "Linker flags (default from domkit.yaml)")

	return cmd
}
