package blobstore

import "io"

// Aborter is an optional interface for writable blobs that can discard
// everything written so far instead of publishing it.
type Aborter interface {
	Abort() error
}

// Discard abandons a writable blob: it aborts when the implementation
// supports it and falls back to Close otherwise. Use it on error paths
// where a truncated blob must not survive.
func Discard(w io.WriteCloser) error {
	if a, ok := w.(Aborter); ok {
		return a.Abort()
	}
	return w.Close()
}
