// Package recstream prepares review datasets for a managed recommendation
// service.
//
// Interaction data for a recommender covers only the items people actually
// reviewed, while the raw item-metadata dump covers the whole catalog.
// Training and demoing against the full dump wastes storage and drowns the
// recommender in items it can never rank. Recstream reduces the dump in a
// single streaming pass: items with at least one review are kept, everything
// else is dropped except a small random cold-start sample.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./data")
//
//	// Pass 1: which items were ever reviewed?
//	ids, n, _ := recstream.ExtractReviewedIDs(ctx, store, "reviews.json.gz")
//
//	// Pass 2: reduce the metadata dump to those items (+0.5% cold-start).
//	stats, _ := recstream.FilterItems(ctx, store, "meta.json.gz", store, "meta-filtered.json.gz", ids,
//	    recstream.WithKeepProbability(0.005),
//	)
//
// Streams are line-delimited JSON, optionally gzip/zstd/lz4-compressed at
// the stream level; compression is detected on read and applied on write.
// Both passes hold one record in memory at a time — only the reviewed-ID
// set scales with the data, and it scales with distinct reviewed items,
// not stream length.
//
// Subpackages: ndjson (record streams), filter (the two passes), diag
// (dataset diagnostics), sample (reservoir sampling), blobstore (byte
// streams from file system, memory, S3 or MinIO), recommender (managed
// service client), lambdaenv (event-ingest function wiring).
package recstream
