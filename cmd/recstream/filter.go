package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream"
)

func newFilterCmd(root *rootOptions) *cobra.Command {
	var (
		idField  string
		keepProb float64
		seed     int64
		codec    string
		logEvery int
	)

	cmd := &cobra.Command{
		Use:   "filter <reviews> <pool> <output>",
		Short: "Reduce an item-metadata pool to reviewed items plus a cold-start sample",
		Long: `Filter runs two streaming passes: the first collects the distinct item
identifiers of the review stream, the second copies every pool record whose
identifier is in that set to the output, admitting unreviewed records with
the cold-start probability. Review stream, pool and output can live in
different stores (local paths or s3://bucket/key URIs).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := root.logger()

			reviewStore, reviewName, err := resolveBlob(ctx, args[0])
			if err != nil {
				return err
			}
			poolStore, poolName, err := resolveBlob(ctx, args[1])
			if err != nil {
				return err
			}
			outStore, outName, err := resolveBlob(ctx, args[2])
			if err != nil {
				return err
			}
			if args[1] == args[2] {
				return fmt.Errorf("pool and output must differ")
			}

			ids, _, err := recstream.ExtractReviewedIDs(ctx, reviewStore, reviewName,
				recstream.WithIDField(idField),
				recstream.WithLogger(logger, 0),
			)
			if err != nil {
				return err
			}

			opts := []recstream.Option{
				recstream.WithIDField(idField),
				recstream.WithKeepProbability(keepProb),
				recstream.WithOutputCodec(codec),
				recstream.WithLogger(logger, logEvery),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, recstream.WithSeed(seed))
			}

			stats, err := recstream.FilterItems(ctx, poolStore, poolName, outStore, outName, ids, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"seen: %d\nkept: %d\n  by membership: %d\n  by sampling:   %d\nmissing id field: %d\n",
				stats.Seen, stats.Kept, stats.KeptByMembership, stats.KeptBySample, stats.MissingField)
			return nil
		},
	}

	cmd.Flags().StringVar(&idField, "id-field", "asin", "identifier field name")
	cmd.Flags().Float64Var(&keepProb, "keep-prob", 0, "cold-start retention probability in [0,1]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed random seed for reproducible sampling")
	cmd.Flags().StringVar(&codec, "codec", "gzip", "output compression codec (none, gzip, zstd, lz4)")
	cmd.Flags().IntVar(&logEvery, "log-every", 100000, "progress log interval in records (0 disables)")

	return cmd
}
