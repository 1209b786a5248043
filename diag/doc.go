// Package diag runs basic diagnostics over the interaction, item and user
// tables of a recommender dataset.
//
// Each table gets a single-pass per-field summary (presence, distinct
// counts, numeric ranges, example values). On top of that, identifier
// fields are interned to dense integers and collected into roaring bitmaps
// so cross-table coverage — interactions referencing items or users absent
// from the catalog tables — falls out of cheap bitmap set operations.
package diag
