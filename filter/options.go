package filter

import (
	"io"
	"log/slog"

	"github.com/hupe1980/recstream/util"
)

// DefaultIDField is the identifier field of the review dataset this project
// ships demos for: the product ID ("asin") of the Amazon review corpus.
const DefaultIDField = "asin"

// Options configures a Filter pass.
type Options struct {
	// IDField is the record field holding the item identifier.
	IDField string

	// KeepProbability is the cold-start retention probability in [0, 1].
	// Each record whose identifier is not in the reviewed set is kept
	// independently with this probability. 0 means no unreviewed record
	// passes; 1 means every record passes.
	KeepProbability float64

	// RNG drives the cold-start draws. Defaults to a time-seeded RNG; pass
	// a fixed-seed RNG for reproducible sampling.
	RNG *util.RNG

	// Logger receives progress output. Defaults to a no-op logger.
	Logger *slog.Logger

	// LogEvery emits a progress line after every N records seen (0
	// disables progress logging).
	LogEvery int
}

// WithIDField sets the identifier field name.
func WithIDField(field string) func(o *Options) {
	return func(o *Options) {
		o.IDField = field
	}
}

// WithKeepProbability sets the cold-start retention probability.
func WithKeepProbability(p float64) func(o *Options) {
	return func(o *Options) {
		o.KeepProbability = p
	}
}

// WithRNG sets the random source used for cold-start draws.
func WithRNG(rng *util.RNG) func(o *Options) {
	return func(o *Options) {
		o.RNG = rng
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger, every int) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
		o.LogEvery = every
	}
}

func defaultOptions() Options {
	return Options{
		IDField: DefaultIDField,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
