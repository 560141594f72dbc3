package ods

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// WriteTag encodes t to w: the type byte, the body size, then the body. The
// body (name length, name, value) is assembled into a scratch buffer first
// so its length is known before the size field is emitted.
func WriteTag(w io.Writer, t Tag) error {
	name := t.Name()
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("%w: tag name is %d bytes, limit %d", ErrMalformed, len(name), math.MaxUint16)
	}
	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)

	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(name)))
	body.Write(tmp[:])
	body.WriteString(name)
	if err := t.WriteValue(body); err != nil {
		return err
	}
	if body.Len() > math.MaxInt32 {
		return fmt.Errorf("%w: tag body is %d bytes, limit %d", ErrMalformed, body.Len(), math.MaxInt32)
	}

	var header [5]byte
	header[0] = byte(t.Type())
	binary.BigEndian.PutUint32(header[1:], uint32(body.Len()))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// WriteTags encodes a sequence of tags to w.
func WriteTags(w io.Writer, tags []Tag) error {
	for _, t := range tags {
		if err := WriteTag(w, t); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTag returns the encoded bytes of a single tag.
func EncodeTag(t Tag) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := WriteTag(buf, t); err != nil {
		return nil, err
	}
	return append([]byte{}, buf.Bytes()...), nil
}

// EncodeTags returns the encoded bytes of a tag sequence.
func EncodeTags(tags []Tag) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := WriteTags(buf, tags); err != nil {
		return nil, err
	}
	return append([]byte{}, buf.Bytes()...), nil
}
