package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, name))
}

// Create creates a writable blob. Data is staged in a temp file and renamed
// into place on Close, so readers never observe a half-written blob.
func (s *LocalStore) Create(_ context.Context, name string) (io.WriteCloser, error) {
	path := filepath.Join(s.root, name)

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}

	return &localWritable{file: tmp, path: path}, nil
}

type localWritable struct {
	file *os.File
	path string
}

func (w *localWritable) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

func (w *localWritable) Close() error {
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		_ = os.Remove(w.file.Name())
		return err
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.file.Name())
		return err
	}
	return os.Rename(w.file.Name(), w.path)
}

// Abort drops the staged temp file without publishing it.
func (w *localWritable) Abort() error {
	_ = w.file.Close()
	return os.Remove(w.file.Name())
}
