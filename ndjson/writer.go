package ndjson

import (
	"bufio"
	"encoding/json"
	"io"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Codec is the whole-stream compression codec name (CodecGzip by
	// default). Use CodecNone for plain text output.
	Codec string
}

// DefaultWriterOptions are the options applied by NewWriter before any
// option functions run.
var DefaultWriterOptions = WriterOptions{
	Codec: CodecGzip,
}

// Writer encodes records as line-delimited JSON beneath whole-stream
// compression.
//
// Output is deterministic for a given record sequence: encoding/json sorts
// map keys and the gzip header carries no timestamp.
type Writer struct {
	comp  io.WriteCloser
	buf   *bufio.Writer
	count int
	err   error
}

// NewWriter wraps w with a record encoder.
//
// The Writer does not close w; Close flushes buffered data and finishes the
// compression frame only.
func NewWriter(w io.Writer, optFns ...func(o *WriterOptions)) (*Writer, error) {
	opts := DefaultWriterOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	comp, err := newCompressor(opts.Codec, w)
	if err != nil {
		return nil, err
	}

	return &Writer{
		comp: comp,
		buf:  bufio.NewWriterSize(comp, 1<<20),
	}, nil
}

// Write encodes rec as one JSON line.
func (w *Writer) Write(rec Record) error {
	if w.err != nil {
		return w.err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		w.err = &MalformedRecordError{Line: w.count + 1, cause: err}
		return w.err
	}

	if _, err := w.buf.Write(data); err != nil {
		w.err = &StreamError{Op: "write", Line: w.count, cause: err}
		return w.err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		w.err = &StreamError{Op: "write", Line: w.count, cause: err}
		return w.err
	}

	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Close flushes buffered records and finishes the compression frame. The
// underlying stream is left open for the caller to close.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		if w.err == nil {
			w.err = &StreamError{Op: "write", Line: w.count, cause: err}
		}
		return w.err
	}
	if err := w.comp.Close(); err != nil {
		if w.err == nil {
			w.err = &StreamError{Op: "write", Line: w.count, cause: err}
		}
		return w.err
	}
	return nil
}
