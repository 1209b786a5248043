package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store hands out sequential byte streams keyed by name.
type Store interface {
	// Open opens a blob for reading. The caller must Close the stream.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create creates a writable blob. The blob becomes visible under name
	// once the stream is closed without error; a stream abandoned after a
	// write error must be discarded by the caller.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}
