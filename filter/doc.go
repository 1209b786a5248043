// Package filter reduces a large item-metadata stream to the items a
// recommender can actually learn from.
//
// It has two halves, run one after the other:
//
//   - ExtractReviewedIDs streams an interaction table and accumulates the
//     set of distinct item identifiers that appear in it.
//   - Filter streams the full item-metadata pool and keeps a record when
//     its identifier is in that set, or — to leave the recommender a few
//     cold-start items to work with — by an independent per-record draw
//     with a configurable probability.
//
// Both halves are single-pass: memory use scales with the number of
// distinct reviewed items, never with stream length.
package filter
