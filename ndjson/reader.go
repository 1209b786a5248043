package ndjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

const (
	// maxLineSize bounds a single record line. Review-metadata records top
	// out in the tens of kilobytes; 16 MiB leaves generous headroom.
	maxLineSize = 16 << 20

	initialLineBuf = 64 << 10
)

// Reader decodes records one at a time from a line-delimited JSON stream.
//
// The compression codec (gzip, zstd, lz4 or plain) is detected from the
// stream's leading magic bytes. A Reader is a single-pass machine: after the
// first error, every subsequent Next returns the same error.
type Reader struct {
	decomp  io.ReadCloser
	scanner *bufio.Scanner
	codec   string
	line    int
	err     error
}

// NewReader wraps r, detecting the stream's compression codec.
//
// The Reader does not close r; the caller owns the underlying stream's
// lifecycle. Close releases only decompressor resources.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	codec, err := sniffCodec(br)
	if err != nil {
		return nil, &StreamError{Op: "read", cause: err}
	}

	decomp, err := newDecompressor(codec, br)
	if err != nil {
		return nil, &StreamError{Op: "read", cause: err}
	}

	scanner := bufio.NewScanner(decomp)
	scanner.Buffer(make([]byte, initialLineBuf), maxLineSize)

	return &Reader{
		decomp:  decomp,
		scanner: scanner,
		codec:   codec,
	}, nil
}

// Next returns the next record in the stream.
//
// It returns io.EOF on clean exhaustion, a *MalformedRecordError if a line
// fails to decode, and a *StreamError if the underlying read fails. Blank
// lines (a trailing newline, typically) are skipped but still counted.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return nil, r.err
	}

	for r.scanner.Scan() {
		r.line++

		data := bytes.TrimSpace(r.scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		rec, err := decodeLine(data)
		if err != nil {
			r.err = &MalformedRecordError{Line: r.line, cause: err}
			return nil, r.err
		}
		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		r.err = &StreamError{Op: "read", Line: r.line, cause: err}
	} else {
		r.err = io.EOF
	}
	return nil, r.err
}

// Line returns the number of the last line consumed (1-based, 0 before the
// first read).
func (r *Reader) Line() int { return r.line }

// Codec returns the detected compression codec name.
func (r *Reader) Codec() string { return r.codec }

// Close releases decompressor resources. It does not close the underlying
// stream.
func (r *Reader) Close() error {
	return r.decomp.Close()
}

// decodeLine decodes a single line into a Record, preserving numbers as
// json.Number. Trailing garbage after the object is a decode error.
func decodeLine(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return rec, nil
}
