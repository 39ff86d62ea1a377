package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		name   string
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default domkit.yaml",
		Long: `Write a configuration file with default values.

Examples:
  domkit init
  domkit init --name=shop --format=json
  domkit init ./site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, name, format, force)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (default: directory name)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Config format: yaml or json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, format string, force bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if config.Exists(abs) && !force {
		return errors.New("E105").
			WithDetail("A configuration file already exists in " + abs).
			WithSuggestion("Pass --force to overwrite it")
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return errors.New("E105").Wrap(err)
	}

	if name == "" {
		name = filepath.Base(abs)
	}
	cfg := config.New()
	cfg.Name = name
	cfg.Title = name

	path := filepath.Join(abs, "domkit."+format)
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	success(cmd.OutOrStdout(), "Wrote %s", path)
	return nil
}
