package ods

import (
	"fmt"

	"github.com/starfederation/ods-go/compress"
)

// backing is a store for one container's decompressed byte image.
type backing interface {
	// load returns the current image. ok is false when the store has never
	// been written (a missing file).
	load() (img []byte, ok bool, err error)

	// store replaces the image.
	store(img []byte) error

	// clear truncates the store to empty.
	clear() error
}

// ObjectDataStructure is the container facade. It offers the same keyed
// operations over a file-backed or memory-backed store; every operation
// works on the decompressed byte image and persists the result back through
// the store's compressor.
//
// A single container is not safe for concurrent mutation.
type ObjectDataStructure struct {
	backing backing
}

// NewFile creates a file-backed container compressed with gzip.
func NewFile(path string) *ObjectDataStructure {
	return NewFileWith(path, compress.GZIP{})
}

// NewFileWith creates a file-backed container using the given compressor.
func NewFileWith(path string, c compress.Compressor) *ObjectDataStructure {
	if c == nil {
		c = compress.Identity{}
	}
	return &ObjectDataStructure{backing: &fileBacking{path: path, comp: c}}
}

// NewMemory creates an empty memory-backed container.
func NewMemory() *ObjectDataStructure {
	return &ObjectDataStructure{backing: &memBacking{}}
}

// NewMemoryFrom creates a memory-backed container from existing encoded
// data, decompressing it with c.
func NewMemoryFrom(data []byte, c compress.Compressor) (*ObjectDataStructure, error) {
	if c == nil {
		c = compress.Identity{}
	}
	img, err := decompressAll(data, c)
	if err != nil {
		return nil, fmt.Errorf("ods: cannot decompress data: %w", err)
	}
	return &ObjectDataStructure{backing: &memBacking{data: img, written: true}}, nil
}

// Get materializes the tag at a dotted key. A nil Tag with nil error means
// the key (or the whole store) is absent.
func (o *ObjectDataStructure) Get(key string) (Tag, error) {
	img, ok, err := o.backing.load()
	if err != nil {
		return nil, err
	}
	if !ok || len(img) == 0 {
		return nil, nil
	}
	return GetTag(img, key)
}

// GetAll decodes every top-level tag in order. It returns nil when the
// store is absent or empty.
func (o *ObjectDataStructure) GetAll() ([]Tag, error) {
	img, ok, err := o.backing.load()
	if err != nil {
		return nil, err
	}
	if !ok || len(img) == 0 {
		return nil, nil
	}
	return DecodeTags(img)
}

// Save writes the tags, replacing all existing contents.
func (o *ObjectDataStructure) Save(tags []Tag) error {
	img, err := EncodeTags(tags)
	if err != nil {
		return err
	}
	return o.backing.store(img)
}

// Append adds one tag after the existing contents.
func (o *ObjectDataStructure) Append(t Tag) error {
	return o.AppendAll([]Tag{t})
}

// AppendAll adds tags after the existing contents. A missing store is
// treated as empty, so the result is always one valid stream.
func (o *ObjectDataStructure) AppendAll(tags []Tag) error {
	img, _, err := o.backing.load()
	if err != nil {
		return err
	}
	enc, err := EncodeTags(tags)
	if err != nil {
		return err
	}
	out := make([]byte, 0, len(img)+len(enc))
	out = append(out, img...)
	out = append(out, enc...)
	return o.backing.store(out)
}

// Find reports whether a dotted key resolves. Read failures degrade to
// false; malformed data and compressed-object traversal surface as errors.
func (o *ObjectDataStructure) Find(key string) (bool, error) {
	img, ok, err := o.backing.load()
	if err != nil || !ok {
		return false, nil
	}
	return FindTag(img, key)
}

// Delete removes the tag at a dotted key and reports whether anything was
// removed. Read and write failures degrade to false; malformed data
// surfaces as an error.
func (o *ObjectDataStructure) Delete(key string) (bool, error) {
	img, ok, err := o.backing.load()
	if err != nil || !ok {
		return false, nil
	}
	out, removed, err := deleteImage(img, key)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	if err := o.backing.store(out); err != nil {
		return false, nil
	}
	return true, nil
}

// Replace swaps the tag at a dotted key for t and reports whether the key
// resolved. The written name is t's own name. Read and write failures
// degrade to false; malformed data surfaces as an error.
func (o *ObjectDataStructure) Replace(key string, t Tag) (bool, error) {
	img, ok, err := o.backing.load()
	if err != nil || !ok {
		return false, nil
	}
	out, replaced, err := replaceImage(img, key, t)
	if err != nil {
		return false, err
	}
	if !replaced {
		return false, nil
	}
	if err := o.backing.store(out); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores t at a dotted key. A resolved key is replaced in place; a
// partially resolved key auto-creates the missing parent objects; an
// unresolved key appends at the top level. A nil t deletes the key and
// fails with ErrKeyNotFound when it does not resolve. An empty key
// replaces the whole container with t.
func (o *ObjectDataStructure) Set(key string, t Tag) error {
	if t == nil {
		img, ok, err := o.backing.load()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		out, removed, err := deleteImage(img, key)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return o.backing.store(out)
	}
	if key == "" {
		return o.Save([]Tag{t})
	}
	img, _, err := o.backing.load()
	if err != nil {
		return err
	}
	out, err := setImage(img, key, t)
	if err != nil {
		return err
	}
	return o.backing.store(out)
}

// Export re-compresses the container's contents with another compressor and
// returns the bytes.
func (o *ObjectDataStructure) Export(c compress.Compressor) ([]byte, error) {
	img, _, err := o.backing.load()
	if err != nil {
		return nil, err
	}
	return compressAll(img, c)
}

// Clear truncates the container to empty.
func (o *ObjectDataStructure) Clear() error {
	return o.backing.clear()
}
