package ndjson

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, codec string) {
	t.Helper()

	records := []Record{
		{"asin": "A", "rank": json.Number("1")},
		{"asin": "B", "nested": map[string]any{"k": "v"}},
		{"asin": "C", "tags": []any{"x", "y"}},
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, func(o *WriterOptions) { o.Codec = codec })
	require.NoError(t, err)

	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.Equal(t, len(records), w.Count())
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, codec, r.Codec())

	for _, want := range records {
		got, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestWriterRoundTrip(t *testing.T) {
	for _, codec := range Codecs() {
		t.Run(codec, func(t *testing.T) {
			roundTrip(t, codec)
		})
	}
}

func TestWriterUnknownCodec(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWriter(&buf, func(o *WriterOptions) { o.Codec = "brotli" })
	require.ErrorIs(t, err, ErrUnknownCodec)
}

func TestWriterDeterministic(t *testing.T) {
	rec := Record{"b": "2", "a": "1", "c": json.Number("3")}

	encode := func() []byte {
		var buf bytes.Buffer
		w, err := NewWriter(&buf)
		require.NoError(t, err)
		require.NoError(t, w.Write(rec))
		require.NoError(t, w.Close())
		return buf.Bytes()
	}

	require.Equal(t, encode(), encode())
}

func TestWriterLeavesStreamOpen(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, func(o *WriterOptions) { o.Codec = CodecNone })
	require.NoError(t, err)
	require.NoError(t, w.Write(Record{"a": "1"}))
	require.NoError(t, w.Close())

	// The underlying buffer is still usable after Close.
	_, err = buf.WriteString("trailer")
	require.NoError(t, err)
}
