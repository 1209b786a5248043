package diag

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/recstream/ndjson"
)

// IDCollection asks a scan to intern the values of one identifier field
// and collect them into a bitmap.
type IDCollection struct {
	Field    string
	Interner *Interner
}

// SummarizeOptions configures a table scan.
type SummarizeOptions struct {
	// MaxDistinct caps per-field distinct-value tracking. Once a field
	// exceeds the cap its Distinct count stops growing and DistinctCapped
	// is set. Identifier-grade fields in review datasets run into the
	// millions; the cap keeps the scan memory-bounded.
	MaxDistinct int

	// MaxExamples is the number of example values retained per field.
	MaxExamples int

	// Collect lists identifier fields whose interned values are gathered
	// into TableSummary.IDs for coverage comparisons.
	Collect []IDCollection
}

// DefaultSummarizeOptions are the options applied before option functions.
var DefaultSummarizeOptions = SummarizeOptions{
	MaxDistinct: 100_000,
	MaxExamples: 3,
}

// WithIDCollection adds an identifier field to collect during the scan.
func WithIDCollection(field string, in *Interner) func(o *SummarizeOptions) {
	return func(o *SummarizeOptions) {
		o.Collect = append(o.Collect, IDCollection{Field: field, Interner: in})
	}
}

// FieldSummary describes one field across a table.
type FieldSummary struct {
	// Present is the number of records carrying the field.
	Present int

	// Distinct is the number of distinct scalar values observed, capped at
	// MaxDistinct (see DistinctCapped).
	Distinct       int
	DistinctCapped bool

	// Numeric is the number of numeric values; Min/Max cover them.
	Numeric  int
	Min, Max float64

	// Examples holds up to MaxExamples distinct example values.
	Examples []string

	distinct map[string]struct{}
}

// TableSummary describes a whole table.
type TableSummary struct {
	// Rows is the number of records scanned.
	Rows int

	// Fields maps field name to its summary.
	Fields map[string]*FieldSummary

	// IDs holds the interned identifier bitmaps requested via Collect,
	// keyed by field name.
	IDs map[string]*roaring.Bitmap
}

// MissingField returns how many records lack the given field.
func (t *TableSummary) MissingField(name string) int {
	f, ok := t.Fields[name]
	if !ok {
		return t.Rows
	}
	return t.Rows - f.Present
}

// Summarize scans a table once and returns its summary.
//
// Like every pass in this project, a malformed line is fatal; partial
// summaries are never returned.
func Summarize(ctx context.Context, r *ndjson.Reader, optFns ...func(o *SummarizeOptions)) (*TableSummary, error) {
	opts := DefaultSummarizeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	sum := &TableSummary{
		Fields: make(map[string]*FieldSummary),
		IDs:    make(map[string]*roaring.Bitmap, len(opts.Collect)),
	}
	for _, c := range opts.Collect {
		sum.IDs[c.Field] = roaring.New()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		sum.Rows++
		for name, value := range rec {
			sum.field(name).observe(value, opts)
		}

		for _, c := range opts.Collect {
			if id, ok := rec.ID(c.Field); ok {
				sum.IDs[c.Field].Add(c.Interner.Intern(id))
			}
		}
	}

	// Drop scan-internal state before handing the summary out.
	for _, f := range sum.Fields {
		f.distinct = nil
	}
	return sum, nil
}

func (t *TableSummary) field(name string) *FieldSummary {
	f, ok := t.Fields[name]
	if !ok {
		f = &FieldSummary{distinct: make(map[string]struct{})}
		t.Fields[name] = f
	}
	return f
}

func (f *FieldSummary) observe(value any, opts SummarizeOptions) {
	f.Present++

	var scalar string
	switch v := value.(type) {
	case string:
		scalar = v
	case json.Number:
		scalar = v.String()
		if n, err := v.Float64(); err == nil {
			if f.Numeric == 0 || n < f.Min {
				f.Min = n
			}
			if f.Numeric == 0 || n > f.Max {
				f.Max = n
			}
			f.Numeric++
		}
	case bool:
		if v {
			scalar = "true"
		} else {
			scalar = "false"
		}
	default:
		// Nested lists/maps and nulls count for presence only.
		return
	}

	if f.DistinctCapped {
		return
	}
	if _, seen := f.distinct[scalar]; seen {
		return
	}
	if len(f.distinct) >= opts.MaxDistinct {
		f.DistinctCapped = true
		return
	}

	f.distinct[scalar] = struct{}{}
	f.Distinct = len(f.distinct)
	if len(f.Examples) < opts.MaxExamples {
		f.Examples = append(f.Examples, scalar)
	}
}
