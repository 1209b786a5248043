package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recstream/ndjson"
	"github.com/hupe1980/recstream/util"
)

// encodeStream builds a gzip-compressed line-delimited JSON stream from
// item records with the given identifiers.
func encodeStream(t *testing.T, ids []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := ndjson.NewWriter(&buf)
	require.NoError(t, err)

	for i, id := range ids {
		err := w.Write(ndjson.Record{
			"asin":  id,
			"title": "item " + id,
			"rank":  json.Number("42"),
			"pos":   json.Number(strconv.Itoa(i)),
		})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// decodeIDs reads every record of a stream and returns the identifiers in
// input order.
func decodeIDs(t *testing.T, data []byte) []string {
	t.Helper()

	r, err := ndjson.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer r.Close()

	var out []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		id, ok := rec.ID("asin")
		require.True(t, ok)
		out = append(out, id)
	}
	return out
}

func runFilter(t *testing.T, input []byte, ids IDSet, optFns ...func(o *Options)) ([]byte, Stats) {
	t.Helper()

	r, err := ndjson.NewReader(bytes.NewReader(input))
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	w, err := ndjson.NewWriter(&out)
	require.NoError(t, err)

	stats, err := Filter(context.Background(), r, w, ids, optFns...)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return out.Bytes(), stats
}

func TestFilterMembershipOnly(t *testing.T) {
	input := encodeStream(t, []string{"A", "B", "C", "B", "D"})
	ids := NewIDSet("B", "D")

	out, stats := runFilter(t, input, ids)

	require.Equal(t, []string{"B", "B", "D"}, decodeIDs(t, out))
	require.Equal(t, 5, stats.Seen)
	require.Equal(t, 3, stats.Kept)
	require.Equal(t, 3, stats.KeptByMembership)
	require.Equal(t, 0, stats.KeptBySample)
}

func TestFilterEmptyInput(t *testing.T) {
	input := encodeStream(t, nil)

	out, stats := runFilter(t, input, NewIDSet("B", "D"), WithKeepProbability(1.0))

	require.Empty(t, decodeIDs(t, out))
	require.Equal(t, Stats{}, stats)
}

func TestFilterKeepAll(t *testing.T) {
	// Empty reviewed set, p=1: every record passes, order preserved.
	input := encodeStream(t, []string{"A", "B", "C"})

	out, stats := runFilter(t, input, NewIDSet(), WithKeepProbability(1.0))

	require.Equal(t, []string{"A", "B", "C"}, decodeIDs(t, out))
	require.Equal(t, 3, stats.KeptBySample)
	require.Equal(t, 0, stats.KeptByMembership)
}

func TestFilterDeterministicAtZero(t *testing.T) {
	input := encodeStream(t, []string{"A", "B", "C", "B", "D"})
	ids := NewIDSet("B", "D")

	out1, _ := runFilter(t, input, ids)
	out2, _ := runFilter(t, input, ids)

	require.Equal(t, out1, out2, "p=0 output must be byte-identical across runs")
}

func TestFilterSeededSampling(t *testing.T) {
	var all []string
	for i := 0; i < 26; i++ {
		all = append(all, string(rune('A'+i)))
	}
	input := encodeStream(t, all)
	ids := NewIDSet("A", "Z")

	out1, stats := runFilter(t, input, ids,
		WithKeepProbability(0.5),
		WithRNG(util.NewRNG(4711)),
	)
	out2, _ := runFilter(t, input, ids,
		WithKeepProbability(0.5),
		WithRNG(util.NewRNG(4711)),
	)

	require.Equal(t, out1, out2, "fixed seed must reproduce the sample")

	// Completeness: every kept record is a member or was sampled.
	require.Equal(t, stats.Kept, stats.KeptByMembership+stats.KeptBySample)
	require.Equal(t, 2, stats.KeptByMembership)

	// Reviewed records survive regardless of the draw.
	kept := decodeIDs(t, out1)
	require.Contains(t, kept, "A")
	require.Contains(t, kept, "Z")

	// Order preservation: kept IDs appear in input order.
	prev := -1
	for _, id := range kept {
		pos := int(id[0] - 'A')
		require.Greater(t, pos, prev)
		prev = pos
	}
}

func TestFilterMissingFieldIsNonMember(t *testing.T) {
	var buf bytes.Buffer
	w, err := ndjson.NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(ndjson.Record{"asin": "A"}))
	require.NoError(t, w.Write(ndjson.Record{"title": "no id here"}))
	require.NoError(t, w.Write(ndjson.Record{"asin": "B"}))
	require.NoError(t, w.Close())

	out, stats := runFilter(t, buf.Bytes(), NewIDSet("A", "B"))

	require.Equal(t, []string{"A", "B"}, decodeIDs(t, out))
	require.Equal(t, 1, stats.MissingField)
}

func TestFilterMalformedLineAborts(t *testing.T) {
	// Plain (uncompressed) stream with a broken third line.
	raw := `{"asin":"A"}
{"asin":"B"}
{"asin":
{"asin":"D"}
{"asin":"E"}
`
	r, err := ndjson.NewReader(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	w, err := ndjson.NewWriter(&out)
	require.NoError(t, err)

	stats, err := Filter(context.Background(), r, w, NewIDSet("A", "B", "D"))
	require.Error(t, err)

	var malformed *ndjson.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, 3, malformed.Line)

	// Lines 1-2 were decided before the abort.
	require.Equal(t, 2, stats.Seen)
	require.Equal(t, 2, stats.Kept)
}

func TestFilterInvalidProbability(t *testing.T) {
	input := encodeStream(t, []string{"A"})

	r, err := ndjson.NewReader(bytes.NewReader(input))
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	w, err := ndjson.NewWriter(&out)
	require.NoError(t, err)

	_, err = Filter(context.Background(), r, w, NewIDSet(), WithKeepProbability(1.5))
	require.ErrorIs(t, err, ErrInvalidProbability)
}

func TestFilterContextCancellation(t *testing.T) {
	input := encodeStream(t, []string{"A", "B"})

	r, err := ndjson.NewReader(bytes.NewReader(input))
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	w, err := ndjson.NewWriter(&out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Filter(ctx, r, w, NewIDSet("A"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFilterPreservesRecordStructure(t *testing.T) {
	var buf bytes.Buffer
	w, err := ndjson.NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(ndjson.Record{
		"asin":      "A",
		"title":     "widget",
		"salesRank": map[string]any{"Toys": json.Number("1234")},
		"related":   []any{"B", "C"},
		"price":     json.Number("19.99"),
	}))
	require.NoError(t, w.Close())

	out, _ := runFilter(t, buf.Bytes(), NewIDSet("A"))

	r, err := ndjson.NewReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "widget", rec["title"])
	require.Equal(t, json.Number("19.99"), rec["price"])
	require.Equal(t, []any{"B", "C"}, rec["related"])
	require.Equal(t, map[string]any{"Toys": json.Number("1234")}, rec["salesRank"])
}
