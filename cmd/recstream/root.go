package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream"
	"github.com/hupe1980/recstream/blobstore"
	"github.com/hupe1980/recstream/blobstore/s3"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "recstream",
		Short:         "Prepare review datasets for a managed recommendation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newExtractCmd(opts),
		newFilterCmd(opts),
		newDiagnoseCmd(),
		newSampleUserCmd(opts),
		newTrackerCmd(),
		newSetEnvCmd(),
	)

	return cmd
}

func (o *rootOptions) logger() *recstream.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return recstream.NewTextLogger(level)
}

// resolveBlob turns a location argument into a store and blob name.
// Locations are either local paths or s3://bucket/key URIs.
func resolveBlob(ctx context.Context, location string) (blobstore.Store, string, error) {
	if rest, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return nil, "", fmt.Errorf("invalid s3 location %q, want s3://bucket/key", location)
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("load aws config: %w", err)
		}
		return s3.NewStore(awss3.NewFromConfig(cfg), bucket, ""), key, nil
	}

	dir, name := filepath.Split(location)
	if dir == "" {
		dir = "."
	}
	return blobstore.NewLocalStore(dir), name, nil
}
