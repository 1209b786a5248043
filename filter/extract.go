package filter

import (
	"context"
	"errors"
	"io"

	"github.com/hupe1980/recstream/ndjson"
)

// ExtractReviewedIDs streams an interaction table and returns the set of
// distinct identifiers found under field, plus the number of records
// processed. The count can exceed the set size when many records reference
// the same item.
//
// Records lacking the field contribute nothing to the set; a line that
// fails to decode aborts the pass with a *ndjson.MalformedRecordError.
func ExtractReviewedIDs(ctx context.Context, r *ndjson.Reader, field string) (IDSet, int, error) {
	ids := make(IDSet)
	count := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, count, err
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return ids, count, nil
		}
		if err != nil {
			return nil, count, err
		}

		count++
		if id, ok := rec.ID(field); ok {
			ids.Add(id)
		}
	}
}
