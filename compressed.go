package ods

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/starfederation/ods-go/compress"
)

// CompressedObjectTag is a composite tag whose children are stored
// compressed. The value region starts with the compressor's registered name
// (u16 length prefix) so the decoder can pick the matching stream.
//
// Children of a compressed object cannot be reached with dotted keys; the
// navigator stops at the tag with ErrCompressedTraversal. Obtain the tag and
// work with its decoded Value instead.
type CompressedObjectTag struct {
	name       string
	compressor compress.Compressor
	Value      []Tag
}

// NewCompressedObjectTag creates a compressed object using gzip.
func NewCompressedObjectTag(name string) *CompressedObjectTag {
	return &CompressedObjectTag{name: name, compressor: compress.GZIP{}}
}

// NewCompressedObjectTagWith creates a compressed object with the given
// children and compressor.
func NewCompressedObjectTagWith(name string, children []Tag, c compress.Compressor) *CompressedObjectTag {
	return &CompressedObjectTag{name: name, compressor: c, Value: children}
}

func (t *CompressedObjectTag) Type() TagType    { return TypeCompressedObject }
func (t *CompressedObjectTag) Name() string     { return t.name }
func (t *CompressedObjectTag) SetName(n string) { t.name = n }

// Compressor returns the compressor the tag encodes with.
func (t *CompressedObjectTag) Compressor() compress.Compressor {
	return t.compressor
}

func (t *CompressedObjectTag) WriteValue(w io.Writer) error {
	name, ok := compress.NameOf(t.compressor)
	if !ok {
		return fmt.Errorf("%w: compressor is not registered", ErrUnknownCompressor)
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(name)))
	if _, err := w.Write(tmp[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}
	cw, err := t.compressor.WrapWriter(w)
	if err != nil {
		return err
	}
	for _, child := range t.Value {
		if err := WriteTag(cw, child); err != nil {
			cw.Close()
			return err
		}
	}
	return cw.Close()
}

// AddTag appends a child tag.
func (t *CompressedObjectTag) AddTag(child Tag) {
	t.Value = append(t.Value, child)
}

// GetTag returns the first child with the given name, or nil.
func (t *CompressedObjectTag) GetTag(name string) Tag {
	for _, child := range t.Value {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// HasTag reports whether a child with the given name exists.
func (t *CompressedObjectTag) HasTag(name string) bool {
	return t.GetTag(name) != nil
}

// RemoveTag removes every child with the given name.
func (t *CompressedObjectTag) RemoveTag(name string) {
	kept := t.Value[:0]
	for _, child := range t.Value {
		if child.Name() != name {
			kept = append(kept, child)
		}
	}
	t.Value = kept
}

// RemoveAllTags removes every child.
func (t *CompressedObjectTag) RemoveAllTags() {
	t.Value = nil
}

// decodeCompressedValue parses a CompressedObject value region: compressor
// name, then the compressed child-tag sequence.
func decodeCompressedValue(name string, value []byte) (*CompressedObjectTag, error) {
	if len(value) < 2 {
		return nil, fmt.Errorf("%w: compressed object value truncated", ErrMalformed)
	}
	nameLen := int(binary.BigEndian.Uint16(value[:2]))
	if len(value) < 2+nameLen {
		return nil, fmt.Errorf("%w: compressor name truncated", ErrMalformed)
	}
	compName := string(value[2 : 2+nameLen])
	c, ok := compress.Lookup(compName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompressor, compName)
	}
	cr, err := c.WrapReader(bytes.NewReader(value[2+nameLen:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer cr.Close()
	raw, err := io.ReadAll(cr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	children, err := DecodeTags(raw)
	if err != nil {
		return nil, err
	}
	return &CompressedObjectTag{name: name, compressor: c, Value: children}, nil
}
