package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream/ndjson"
	"github.com/hupe1980/recstream/sample"
	"github.com/hupe1980/recstream/util"
)

func newSampleUserCmd(root *rootOptions) *cobra.Command {
	var (
		field string
		k     int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "sample-user <interactions>",
		Short: "Pick random user identifiers from an interaction stream",
		Long: `Sample-user draws a uniform random sample of user identifiers via
reservoir sampling, so the stream is read exactly once in constant memory
regardless of its length. Handy for picking a demo user to request
recommendations for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, closeSrc, err := openLocation(ctx, args[0])
			if err != nil {
				return err
			}
			defer closeSrc()

			r, err := ndjson.NewReader(src)
			if err != nil {
				return err
			}
			defer r.Close()

			var rng *util.RNG
			if cmd.Flags().Changed("seed") {
				rng = util.NewRNG(seed)
			}
			reservoir := sample.NewReservoir[string](k, rng)

			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := r.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				if id, ok := rec.ID(field); ok {
					reservoir.Add(id)
				}
			}

			root.logger().Debug("sampled users", "seen", reservoir.Seen())
			for _, id := range reservoir.Items() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "USER_ID", "user identifier field name")
	cmd.Flags().IntVar(&k, "k", 1, "sample size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed random seed for a reproducible pick")

	return cmd
}
