// Package ndjson reads and writes line-delimited JSON record streams.
//
// A stream is a sequence of UTF-8 lines, each holding exactly one JSON
// object, optionally compressed at the whole-stream level. Readers detect
// the compression codec from the stream's magic bytes (gzip, zstd, lz4 or
// plain); writers produce gzip by default.
//
// Records are decoded one at a time. Neither Reader nor Writer ever buffers
// more than a single record, so memory use is independent of stream length.
package ndjson
