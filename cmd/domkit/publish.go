package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		prune  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built site to S3",
		Long: `Upload the output of domkit build to an S3 bucket.

Files whose hash matches the object already in the bucket are skipped.
HTML pages are stored with Cache-Control: no-cache, everything else with
publish.cacheControl. Credentials come from the standard AWS chain.

Examples:
  domkit publish
  domkit publish --bucket=my-site --prefix=v2
  domkit publish --prune --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}

			opts := publish.OptionsFromConfig(cfg)
			if bucket != "" {
				opts.Bucket = bucket
			}
			if prefix != "" {
				opts.Prefix = prefix
			}
			if region == "" {
				region = cfg.Publish.Region
			}
			opts.Prune = prune
			opts.DryRun = dryRun
			opts.Logger = newLogger(cmd.ErrOrStderr(), cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := publish.NewClient(ctx, region)
			if err != nil {
				return err
			}
			p, err := publish.New(client, opts)
			if err != nil {
				return err
			}

			result, err := p.Publish(ctx, cfg.OutputPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Published in %s", result.Duration.Round(time.Millisecond))
			info(out, "%d uploaded, %d unchanged, %d deleted", len(result.Uploaded), len(result.Skipped), len(result.Deleted))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from domkit.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from domkit.yaml)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from domkit.yaml or the environment)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete objects under the prefix that the build no longer contains")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without modifying the bucket")

	return cmd
}
