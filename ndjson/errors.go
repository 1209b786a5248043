package ndjson

import (
	"errors"
	"fmt"
)

// ErrUnknownCodec is returned when a compression codec name is not registered.
var ErrUnknownCodec = errors.New("unknown compression codec")

// errTrailingData marks a line with content after the JSON object.
var errTrailingData = errors.New("trailing data after JSON object")

// MalformedRecordError indicates a line that failed to decode as a JSON object.
//
// Decode failures are fatal for the pass: the stream position is unknown
// territory after a bad line, and silently skipping would defeat the point
// of a data-validation tool. Line is 1-based.
//
// The underlying decode error can be accessed via errors.Unwrap.
type MalformedRecordError struct {
	Line  int
	cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.cause)
}

func (e *MalformedRecordError) Unwrap() error { return e.cause }

// StreamError indicates an I/O failure on the underlying stream.
//
// It is propagated as-is; retrying is the caller's concern since the caller
// owns stream provisioning. Line is the last fully-read line (0 if the
// failure happened before any line was read).
//
// The underlying I/O error can be accessed via errors.Unwrap.
type StreamError struct {
	Op    string // "read" or "write"
	Line  int
	cause error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream %s failed after line %d: %v", e.Op, e.Line, e.cause)
}

func (e *StreamError) Unwrap() error { return e.cause }
