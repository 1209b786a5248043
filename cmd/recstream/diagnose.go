package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recstream/diag"
)

func newDiagnoseCmd() *cobra.Command {
	var (
		itemsLoc         string
		usersLoc         string
		itemField        string
		userField        string
		itemCatalogField string
	)

	cmd := &cobra.Command{
		Use:   "diagnose <interactions>",
		Short: "Summarize dataset tables and check cross-table coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			interactions, closeFns, err := openLocation(ctx, args[0])
			if err != nil {
				return err
			}
			defer closeFns()

			tables := diag.Tables{
				Interactions:     interactions,
				ItemField:        itemField,
				UserField:        userField,
				ItemCatalogField: itemCatalogField,
			}

			if itemsLoc != "" {
				items, closeItems, err := openLocation(ctx, itemsLoc)
				if err != nil {
					return err
				}
				defer closeItems()
				tables.Items = items
			}
			if usersLoc != "" {
				users, closeUsers, err := openLocation(ctx, usersLoc)
				if err != nil {
					return err
				}
				defer closeUsers()
				tables.Users = users
			}

			report, err := diag.Run(ctx, tables)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemsLoc, "items", "", "item table location (optional)")
	cmd.Flags().StringVar(&usersLoc, "users", "", "user table location (optional)")
	cmd.Flags().StringVar(&itemField, "item-field", "ITEM_ID", "item identifier field in interactions")
	cmd.Flags().StringVar(&userField, "user-field", "USER_ID", "user identifier field in interactions")
	cmd.Flags().StringVar(&itemCatalogField, "item-catalog-field", "asin", "item identifier field in the item table")

	return cmd
}

// openLocation opens a blob location for reading.
func openLocation(ctx context.Context, location string) (io.Reader, func(), error) {
	store, name, err := resolveBlob(ctx, location)
	if err != nil {
		return nil, nil, err
	}
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", location, err)
	}
	return r, func() { _ = r.Close() }, nil
}

func printReport(w io.Writer, report *diag.Report) {
	printSummary(w, "interactions", report.Interactions)
	printSummary(w, "items", report.Items)
	printSummary(w, "users", report.Users)
	printCoverage(w, "item coverage", report.ItemCoverage)
	printCoverage(w, "user coverage", report.UserCoverage)
}

func printSummary(w io.Writer, name string, sum *diag.TableSummary) {
	if sum == nil {
		return
	}

	fmt.Fprintf(w, "%s: %d rows\n", name, sum.Rows)

	fields := make([]string, 0, len(sum.Fields))
	for f := range sum.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		fs := sum.Fields[f]
		fmt.Fprintf(w, "  %-24s present=%d missing=%d distinct=%d", f, fs.Present, sum.Rows-fs.Present, fs.Distinct)
		if fs.DistinctCapped {
			fmt.Fprint(w, "+")
		}
		if fs.Numeric > 0 {
			fmt.Fprintf(w, " min=%g max=%g", fs.Min, fs.Max)
		}
		fmt.Fprintln(w)
	}
}

func printCoverage(w io.Writer, name string, cov *diag.CoverageStats) {
	if cov == nil {
		return
	}
	fmt.Fprintf(w, "%s: referenced=%d defined=%d matched=%d missing=%d unreferenced=%d\n",
		name, cov.Referenced, cov.Defined, cov.Matched, cov.Missing, cov.Unreferenced)
}
