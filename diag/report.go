package diag

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/recstream/ndjson"
)

// Tables names the input streams and identifier fields for a full
// diagnostic report. Items and Users are optional; Interactions is not.
type Tables struct {
	Interactions io.Reader
	Items        io.Reader
	Users        io.Reader

	// ItemField / UserField are the identifier fields inside the
	// interaction table.
	ItemField string
	UserField string

	// ItemCatalogField / UserCatalogField are the identifier fields inside
	// the item and user tables.
	ItemCatalogField string
	UserCatalogField string
}

// Report is the result of a diagnostic run.
type Report struct {
	Interactions *TableSummary
	Items        *TableSummary
	Users        *TableSummary

	// ItemCoverage compares interaction item references against the item
	// table; nil when no item table was supplied. Same for UserCoverage.
	ItemCoverage *CoverageStats
	UserCoverage *CoverageStats
}

// Run scans all supplied tables concurrently and assembles the report.
// Each table is still consumed strictly in order by its own scan.
func Run(ctx context.Context, tables Tables) (*Report, error) {
	if tables.Interactions == nil {
		return nil, fmt.Errorf("diag: interactions table is required")
	}
	if tables.ItemField == "" {
		tables.ItemField = "ITEM_ID"
	}
	if tables.UserField == "" {
		tables.UserField = "USER_ID"
	}
	if tables.ItemCatalogField == "" {
		tables.ItemCatalogField = "asin"
	}
	if tables.UserCatalogField == "" {
		tables.UserCatalogField = tables.UserField
	}

	itemInterner := NewInterner()
	userInterner := NewInterner()

	report := &Report{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := ndjson.NewReader(tables.Interactions)
		if err != nil {
			return fmt.Errorf("interactions: %w", err)
		}
		defer r.Close()

		sum, err := Summarize(ctx, r,
			WithIDCollection(tables.ItemField, itemInterner),
			WithIDCollection(tables.UserField, userInterner),
		)
		if err != nil {
			return fmt.Errorf("interactions: %w", err)
		}
		report.Interactions = sum
		return nil
	})

	if tables.Items != nil {
		g.Go(func() error {
			r, err := ndjson.NewReader(tables.Items)
			if err != nil {
				return fmt.Errorf("items: %w", err)
			}
			defer r.Close()

			sum, err := Summarize(ctx, r,
				WithIDCollection(tables.ItemCatalogField, itemInterner),
			)
			if err != nil {
				return fmt.Errorf("items: %w", err)
			}
			report.Items = sum
			return nil
		})
	}

	if tables.Users != nil {
		g.Go(func() error {
			r, err := ndjson.NewReader(tables.Users)
			if err != nil {
				return fmt.Errorf("users: %w", err)
			}
			defer r.Close()

			sum, err := Summarize(ctx, r,
				WithIDCollection(tables.UserCatalogField, userInterner),
			)
			if err != nil {
				return fmt.Errorf("users: %w", err)
			}
			report.Users = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if report.Items != nil {
		cov := Coverage(
			report.Interactions.IDs[tables.ItemField],
			report.Items.IDs[tables.ItemCatalogField],
		)
		report.ItemCoverage = &cov
	}
	if report.Users != nil {
		cov := Coverage(
			report.Interactions.IDs[tables.UserField],
			report.Users.IDs[tables.UserCatalogField],
		)
		report.UserCoverage = &cov
	}

	return report, nil
}
