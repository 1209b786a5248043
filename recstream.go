package recstream

import (
	"context"
	"fmt"

	"github.com/hupe1980/recstream/blobstore"
	"github.com/hupe1980/recstream/filter"
	"github.com/hupe1980/recstream/ndjson"
)

// ExtractReviewedIDs streams the named blob and returns the set of distinct
// identifiers found in it, plus the number of records processed.
func ExtractReviewedIDs(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (filter.IDSet, int, error) {
	opts := applyOptions(optFns)
	logger := opts.logger.WithBlob(name)

	src, err := store.Open(ctx, name)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer src.Close()

	r, err := ndjson.NewReader(src)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", name, err)
	}
	defer r.Close()

	ids, count, err := filter.ExtractReviewedIDs(ctx, r, opts.idField)
	if err != nil {
		return nil, count, fmt.Errorf("extract %s: %w", name, err)
	}

	logger.Info("extracted reviewed ids", "records", count, "distinct", ids.Len())
	return ids, count, nil
}

// FilterItems streams the src blob through the unused-item filter into a
// new dst blob. Records whose identifier is in ids always pass; the rest
// pass with the configured cold-start probability (0 by default). Source
// and destination may live in different stores.
//
// On failure the dst blob is discarded, not published half-written.
func FilterItems(ctx context.Context, srcStore blobstore.Store, src string, dstStore blobstore.Store, dst string, ids filter.IDSet, optFns ...Option) (filter.Stats, error) {
	opts := applyOptions(optFns)
	logger := opts.logger.WithBlob(dst)

	in, err := srcStore.Open(ctx, src)
	if err != nil {
		return filter.Stats{}, fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	r, err := ndjson.NewReader(in)
	if err != nil {
		return filter.Stats{}, fmt.Errorf("read %s: %w", src, err)
	}
	defer r.Close()

	out, err := dstStore.Create(ctx, dst)
	if err != nil {
		return filter.Stats{}, fmt.Errorf("create %s: %w", dst, err)
	}

	w, err := ndjson.NewWriter(out, func(o *ndjson.WriterOptions) {
		o.Codec = opts.outputCodec
	})
	if err != nil {
		_ = blobstore.Discard(out)
		return filter.Stats{}, fmt.Errorf("create %s: %w", dst, err)
	}

	stats, err := filter.Filter(ctx, r, w, ids,
		filter.WithIDField(opts.idField),
		filter.WithKeepProbability(opts.keepProbability),
		filter.WithRNG(opts.rng),
		filter.WithLogger(logger.Logger, opts.logEvery),
	)
	if err != nil {
		_ = blobstore.Discard(out)
		return stats, fmt.Errorf("filter %s: %w", src, err)
	}

	if err := w.Close(); err != nil {
		_ = blobstore.Discard(out)
		return stats, fmt.Errorf("finish %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return stats, fmt.Errorf("finish %s: %w", dst, err)
	}

	return stats, nil
}
