package ndjson

import (
	"encoding/json"
	"strconv"
)

// Record is a single decoded stream record: a map of field names to
// heterogeneous JSON values. Records are not mutated by this package after
// decoding; numeric values are preserved as json.Number so identifier
// fields round-trip without float formatting drift.
type Record map[string]any

// ID extracts the identifier stored under field.
//
// Identifiers are compared structurally as strings, so numeric values are
// coerced to their canonical string form. The second return is false when
// the field is absent or holds a value that cannot serve as an identifier
// (null, object, array, bool).
func (r Record) ID(field string) (string, bool) {
	v, ok := r[field]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}
