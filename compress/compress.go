// Package compress provides the streaming compression port used by ODS
// containers and CompressedObject tags, plus a process-wide name registry.
// Compressors are referenced by name on the wire, so both directions of the
// mapping are kept.
package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor is a pair of byte-stream adapters. WrapWriter may buffer
// internally; callers must Close the returned writer so trailers flush.
type Compressor interface {
	// WrapReader returns a decompressing reader over r.
	WrapReader(r io.Reader) (io.ReadCloser, error)

	// WrapWriter returns a compressing writer over w. Closing it finalizes
	// the stream without closing w.
	WrapWriter(w io.Writer) (io.WriteCloser, error)
}

// Identity passes bytes through unchanged.
type Identity struct{}

func (Identity) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (Identity) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// GZIP compresses with the gzip framing.
type GZIP struct{}

func (GZIP) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (GZIP) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

// Zlib compresses with the zlib (DEFLATE) framing.
type Zlib struct{}

func (Zlib) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (Zlib) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}

// Zstd compresses with zstandard.
type Zstd struct{}

func (Zstd) WrapReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func (Zstd) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

// LZ4 compresses with the lz4 frame format.
type LZ4 struct{}

func (LZ4) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (LZ4) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
