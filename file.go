package ods

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/starfederation/ods-go/compress"
)

// fileBacking stores the image in a file, compressed with comp. Writes go
// to a sibling temp file and rename into place so a failed write leaves the
// old contents intact.
type fileBacking struct {
	path string
	comp compress.Compressor
}

func (f *fileBacking) load() ([]byte, bool, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// A truncated store holds zero bytes, not an empty compressed stream.
	if len(raw) == 0 {
		return nil, true, nil
	}
	img, err := decompressAll(raw, f.comp)
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}

func (f *fileBacking) store(img []byte) error {
	enc, err := compressAll(img, f.comp)
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, enc)
}

func (f *fileBacking) clear() error {
	return writeFileAtomic(f.path, nil)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ods-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// decompressAll reads the whole of data through c.
func decompressAll(data []byte, c compress.Compressor) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	cr, err := c.WrapReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	return io.ReadAll(cr)
}

// compressAll writes the whole of img through c.
func compressAll(img []byte, c compress.Compressor) ([]byte, error) {
	var buf bytes.Buffer
	cw, err := c.WrapWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := cw.Write(img); err != nil {
		cw.Close()
		return nil, err
	}
	if err := cw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportFile replaces the container's contents with another file's,
// decompressing it with c.
func (o *ObjectDataStructure) ImportFile(path string, c compress.Compressor) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	img, err := decompressAll(raw, c)
	if err != nil {
		return err
	}
	return o.backing.store(img)
}

// SaveToFile copies the container's contents into another file, compressed
// with c.
func (o *ObjectDataStructure) SaveToFile(path string, c compress.Compressor) error {
	img, _, err := o.backing.load()
	if err != nil {
		return err
	}
	enc, err := compressAll(img, c)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, enc)
}
