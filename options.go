package recstream

import (
	"github.com/hupe1980/recstream/filter"
	"github.com/hupe1980/recstream/ndjson"
	"github.com/hupe1980/recstream/util"
)

type options struct {
	idField         string
	keepProbability float64
	rng             *util.RNG
	outputCodec     string
	logger          *Logger
	logEvery        int
}

// Option configures the package-level dataset operations.
type Option func(*options)

// WithIDField sets the identifier field name used for both extraction and
// filtering. Defaults to the review dataset's product-ID field ("asin").
func WithIDField(field string) Option {
	return func(o *options) {
		o.idField = field
	}
}

// WithKeepProbability sets the cold-start retention probability in [0, 1].
// Defaults to 0: no unreviewed item passes the filter.
func WithKeepProbability(p float64) Option {
	return func(o *options) {
		o.keepProbability = p
	}
}

// WithSeed fixes the random seed of the cold-start draws, making filter
// output reproducible for probabilities above zero.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = util.NewRNG(seed)
	}
}

// WithOutputCodec sets the compression codec of filter output
// (ndjson.CodecGzip by default).
func WithOutputCodec(codec string) Option {
	return func(o *options) {
		o.outputCodec = codec
	}
}

// WithLogger sets the logger and progress interval. every is the number of
// records between progress lines (0 disables them).
func WithLogger(logger *Logger, every int) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
		o.logEvery = every
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		idField:     filter.DefaultIDField,
		outputCodec: ndjson.CodecGzip,
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
