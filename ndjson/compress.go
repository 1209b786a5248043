package ndjson

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression codec names. Codec selection is a compatibility boundary:
// the reader identifies the codec from the stream itself, the writer
// records nothing beyond the codec's own framing.
const (
	CodecNone = "none"
	CodecGzip = "gzip"
	CodecZstd = "zstd"
	CodecLZ4  = "lz4"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// sniffCodec identifies the compression codec from the first bytes of the
// stream without consuming them. Streams shorter than a magic number are
// treated as plain text.
func sniffCodec(br *bufio.Reader) (string, error) {
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return "", err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return CodecGzip, nil
	case bytes.HasPrefix(head, zstdMagic):
		return CodecZstd, nil
	case bytes.HasPrefix(head, lz4Magic):
		return CodecLZ4, nil
	default:
		return CodecNone, nil
	}
}

// newDecompressor wraps r with the named codec's decompressor.
func newDecompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch name {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// newCompressor wraps w with the named codec's compressor. The returned
// WriteCloser finishes the compression frame on Close but does not close w.
func newCompressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch name {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// Codecs returns the names of all registered compression codecs.
func Codecs() []string {
	return []string{CodecNone, CodecGzip, CodecZstd, CodecLZ4}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
