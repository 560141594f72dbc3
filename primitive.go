package ods

import (
	"encoding/binary"
	"io"
	"math"
)

// StringTag holds UTF-8 text. The value has no inner length prefix; the tag
// body size bounds it.
type StringTag struct {
	name  string
	Value string
}

// NewStringTag creates a string tag.
func NewStringTag(name, value string) *StringTag {
	return &StringTag{name: name, Value: value}
}

func (t *StringTag) Type() TagType    { return TypeString }
func (t *StringTag) Name() string     { return t.name }
func (t *StringTag) SetName(n string) { t.name = n }
func (t *StringTag) WriteValue(w io.Writer) error {
	_, err := io.WriteString(w, t.Value)
	return err
}

// IntTag holds a signed 32-bit integer.
type IntTag struct {
	name  string
	Value int32
}

// NewIntTag creates an int tag.
func NewIntTag(name string, value int32) *IntTag {
	return &IntTag{name: name, Value: value}
}

func (t *IntTag) Type() TagType    { return TypeInt }
func (t *IntTag) Name() string     { return t.name }
func (t *IntTag) SetName(n string) { t.name = n }
func (t *IntTag) WriteValue(w io.Writer) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// FloatTag holds an IEEE-754 single-precision float.
type FloatTag struct {
	name  string
	Value float32
}

// NewFloatTag creates a float tag.
func NewFloatTag(name string, value float32) *FloatTag {
	return &FloatTag{name: name, Value: value}
}

func (t *FloatTag) Type() TagType    { return TypeFloat }
func (t *FloatTag) Name() string     { return t.name }
func (t *FloatTag) SetName(n string) { t.name = n }
func (t *FloatTag) WriteValue(w io.Writer) error {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// DoubleTag holds an IEEE-754 double-precision float.
type DoubleTag struct {
	name  string
	Value float64
}

// NewDoubleTag creates a double tag.
func NewDoubleTag(name string, value float64) *DoubleTag {
	return &DoubleTag{name: name, Value: value}
}

func (t *DoubleTag) Type() TagType    { return TypeDouble }
func (t *DoubleTag) Name() string     { return t.name }
func (t *DoubleTag) SetName(n string) { t.name = n }
func (t *DoubleTag) WriteValue(w io.Writer) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// ShortTag holds a signed 16-bit integer.
type ShortTag struct {
	name  string
	Value int16
}

// NewShortTag creates a short tag.
func NewShortTag(name string, value int16) *ShortTag {
	return &ShortTag{name: name, Value: value}
}

func (t *ShortTag) Type() TagType    { return TypeShort }
func (t *ShortTag) Name() string     { return t.name }
func (t *ShortTag) SetName(n string) { t.name = n }
func (t *ShortTag) WriteValue(w io.Writer) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// LongTag holds a signed 64-bit integer.
type LongTag struct {
	name  string
	Value int64
}

// NewLongTag creates a long tag.
func NewLongTag(name string, value int64) *LongTag {
	return &LongTag{name: name, Value: value}
}

func (t *LongTag) Type() TagType    { return TypeLong }
func (t *LongTag) Name() string     { return t.name }
func (t *LongTag) SetName(n string) { t.name = n }
func (t *LongTag) WriteValue(w io.Writer) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// CharTag holds a single UTF-16 code unit. Runes above U+FFFF are truncated
// to their low 16 bits on the wire; surrogate pairs are not synthesized.
type CharTag struct {
	name  string
	Value rune
}

// NewCharTag creates a char tag.
func NewCharTag(name string, value rune) *CharTag {
	return &CharTag{name: name, Value: value}
}

func (t *CharTag) Type() TagType    { return TypeChar }
func (t *CharTag) Name() string     { return t.name }
func (t *CharTag) SetName(n string) { t.name = n }
func (t *CharTag) WriteValue(w io.Writer) error {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(t.Value))
	_, err := w.Write(tmp[:])
	return err
}

// ByteTag holds a single byte.
type ByteTag struct {
	name  string
	Value byte
}

// NewByteTag creates a byte tag.
func NewByteTag(name string, value byte) *ByteTag {
	return &ByteTag{name: name, Value: value}
}

func (t *ByteTag) Type() TagType    { return TypeByte }
func (t *ByteTag) Name() string     { return t.name }
func (t *ByteTag) SetName(n string) { t.name = n }
func (t *ByteTag) WriteValue(w io.Writer) error {
	_, err := w.Write([]byte{t.Value})
	return err
}

// InvalidTag carries the opaque value bytes of a type ID the decoder did not
// recognize. It is only materialized when tolerant mode is on.
type InvalidTag struct {
	name  string
	typ   TagType
	Value []byte
}

func (t *InvalidTag) Type() TagType    { return t.typ }
func (t *InvalidTag) Name() string     { return t.name }
func (t *InvalidTag) SetName(n string) { t.name = n }
func (t *InvalidTag) WriteValue(w io.Writer) error {
	_, err := w.Write(t.Value)
	return err
}
