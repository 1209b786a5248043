package filter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/recstream/ndjson"
	"github.com/hupe1980/recstream/util"
)

// ErrInvalidProbability is returned when KeepProbability is outside [0, 1].
var ErrInvalidProbability = errors.New("keep probability must be in [0, 1]")

// Stats are the progress counters of a Filter pass. They are operational
// telemetry, not part of the correctness contract.
type Stats struct {
	// Seen is the number of records read from the input.
	Seen int

	// Kept is the number of records written to the output.
	Kept int

	// KeptByMembership counts records kept because their identifier is in
	// the reviewed set.
	KeptByMembership int

	// KeptBySample counts unreviewed records admitted by the cold-start
	// draw.
	KeptBySample int

	// MissingField counts records lacking the identifier field. Such
	// records are treated as non-members; they can still be admitted by
	// the cold-start draw.
	MissingField int
}

// Filter streams records from r to w, keeping a record when its identifier
// is a member of ids, or otherwise with probability KeepProbability via an
// independent per-record draw. Kept records are re-serialized one at a time
// in input order; memory use scales only with ids.
//
// ids must not be mutated while Filter runs. With KeepProbability zero the
// output is fully determined by the input and ids.
//
// A decode failure aborts the pass mid-stream with the positioned error;
// the caller is responsible for discarding the truncated output.
func Filter(ctx context.Context, r *ndjson.Reader, w *ndjson.Writer, ids IDSet, optFns ...func(o *Options)) (Stats, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.KeepProbability < 0 || opts.KeepProbability > 1 {
		return Stats{}, fmt.Errorf("%w: %v", ErrInvalidProbability, opts.KeepProbability)
	}

	rng := opts.RNG
	if rng == nil && opts.KeepProbability > 0 {
		rng = util.NewTimeRNG()
	}

	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			opts.Logger.Info("filter pass done",
				"seen", stats.Seen,
				"kept", stats.Kept,
				"kept_by_membership", stats.KeptByMembership,
				"kept_by_sample", stats.KeptBySample,
				"missing_field", stats.MissingField,
			)
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Seen++

		id, ok := rec.ID(opts.IDField)
		if !ok {
			stats.MissingField++
		}

		keep := false
		switch {
		case ok && ids.Contains(id):
			keep = true
			stats.KeptByMembership++
		case opts.KeepProbability > 0 && rng.Float64() < opts.KeepProbability:
			keep = true
			stats.KeptBySample++
		}

		if keep {
			if err := w.Write(rec); err != nil {
				return stats, err
			}
			stats.Kept++
		}

		if opts.LogEvery > 0 && stats.Seen%opts.LogEvery == 0 {
			opts.Logger.Info("filter progress",
				"seen", stats.Seen,
				"kept", stats.Kept,
			)
		}
	}
}
