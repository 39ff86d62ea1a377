// Command domkit builds, serves, pre-renders and publishes the domkit app.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "domkit",
		Short: "Build single-page Go apps for the browser",
		Long: `domkit compiles a Go application to WebAssembly, pre-renders every
route to static HTML and serves or publishes the result.

Pages are built from reactive signals and swapped by a hash router
that replaces the whole body on every navigation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(
		initCmd(),
		devCmd(),
		buildCmd(),
		renderCmd(),
		routesCmd(),
		publishCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadProject loads the project configuration and checks that the app
// package exists.
func loadProject() (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	app := filepath.Join(cfg.Dir(), filepath.FromSlash(cfg.AppPath()))
	if info, err := os.Stat(app); err != nil || !info.IsDir() {
		return nil, errors.New("E140").
			WithDetail("paths.app points at " + cfg.AppPath() + ", which is not a directory").
			WithLocation(cfg.Path(), 0, 0)
	}
	return cfg, nil
}

// newLogger returns a text logger at the configured level, or debug when
// --verbose is set.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		if l, err := cfg.SlogLevel(); err == nil {
			level = l
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
