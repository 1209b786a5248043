package diag

import "github.com/RoaringBitmap/roaring/v2"

// CoverageStats compares the identifiers referenced by one table against
// the identifiers defined by another.
type CoverageStats struct {
	// Referenced is the number of distinct identifiers in the referencing
	// table (typically interactions).
	Referenced uint64

	// Defined is the number of distinct identifiers in the catalog table.
	Defined uint64

	// Matched is the number of referenced identifiers present in the
	// catalog.
	Matched uint64

	// Missing is the number of referenced identifiers absent from the
	// catalog. Missing > 0 usually means the catalog export is stale or
	// the item pool was filtered too aggressively.
	Missing uint64

	// Unreferenced is the number of catalog identifiers no interaction
	// ever touched — the cold-start population.
	Unreferenced uint64
}

// Coverage computes coverage of referenced against defined. Both bitmaps
// must have been built from the same Interner. Nil bitmaps count as empty.
func Coverage(referenced, defined *roaring.Bitmap) CoverageStats {
	if referenced == nil {
		referenced = roaring.New()
	}
	if defined == nil {
		defined = roaring.New()
	}

	matched := roaring.And(referenced, defined)

	return CoverageStats{
		Referenced:   referenced.GetCardinality(),
		Defined:      defined.GetCardinality(),
		Matched:      matched.GetCardinality(),
		Missing:      referenced.GetCardinality() - matched.GetCardinality(),
		Unreferenced: defined.GetCardinality() - matched.GetCardinality(),
	}
}
