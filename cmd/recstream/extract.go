package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream"
)

func newExtractCmd(root *rootOptions) *cobra.Command {
	var idField string

	cmd := &cobra.Command{
		Use:   "extract <reviews>",
		Short: "Count the distinct item identifiers in a review stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, name, err := resolveBlob(ctx, args[0])
			if err != nil {
				return err
			}

			ids, count, err := recstream.ExtractReviewedIDs(ctx, store, name,
				recstream.WithIDField(idField),
				recstream.WithLogger(root.logger(), 0),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "records: %d\ndistinct ids: %d\n", count, ids.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&idField, "id-field", "asin", "identifier field name")

	return cmd
}
