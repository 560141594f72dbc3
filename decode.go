package ods

import (
	"encoding/binary"
	"fmt"
	"math"
)

// tagPrologue is the parsed fixed header of a tag: type byte plus body size
// plus name length. The full tag spans total bytes from its first byte.
type tagPrologue struct {
	typ      TagType
	bodySize int
	nameLen  int
	total    int
}

// readPrologue parses the 7-byte header at the start of b and validates it
// against the remaining region.
func readPrologue(b []byte) (tagPrologue, error) {
	if len(b) < 7 {
		return tagPrologue{}, fmt.Errorf("%w: %d bytes left, tag header needs 7", ErrMalformed, len(b))
	}
	bodySize := int32(binary.BigEndian.Uint32(b[1:5]))
	nameLen := int(binary.BigEndian.Uint16(b[5:7]))
	if bodySize < int32(2+nameLen) {
		return tagPrologue{}, fmt.Errorf("%w: body size %d smaller than 2+name length %d", ErrMalformed, bodySize, nameLen)
	}
	total := int(bodySize) + 5
	if total > len(b) {
		return tagPrologue{}, fmt.Errorf("%w: tag spans %d bytes, %d left", ErrMalformed, total, len(b))
	}
	return tagPrologue{
		typ:      TagType(b[0]),
		bodySize: int(bodySize),
		nameLen:  nameLen,
		total:    total,
	}, nil
}

// DecodeTag decodes the tag at the start of b and returns it with the number
// of bytes consumed.
func DecodeTag(b []byte) (Tag, int, error) {
	p, err := readPrologue(b)
	if err != nil {
		return nil, 0, err
	}
	name := string(b[7 : 7+p.nameLen])
	value := b[7+p.nameLen : p.total]
	t, err := decodeValue(p.typ, name, value)
	if err != nil {
		return nil, 0, err
	}
	return t, p.total, nil
}

// DecodeTags decodes the whole of b as a tag sequence. Termination is
// reaching the end of the region, not end of any outer stream.
func DecodeTags(b []byte) ([]Tag, error) {
	var out []Tag
	pos := 0
	for pos < len(b) {
		t, n, err := DecodeTag(b[pos:])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		pos += n
	}
	return out, nil
}

// decodeValue materializes a tag from its type, name, and value region.
func decodeValue(typ TagType, name string, value []byte) (Tag, error) {
	switch typ {
	case TypeString:
		return &StringTag{name: name, Value: string(value)}, nil
	case TypeInt:
		if len(value) != 4 {
			return nil, fmt.Errorf("%w: int value is %d bytes", ErrMalformed, len(value))
		}
		return &IntTag{name: name, Value: int32(binary.BigEndian.Uint32(value))}, nil
	case TypeFloat:
		if len(value) != 4 {
			return nil, fmt.Errorf("%w: float value is %d bytes", ErrMalformed, len(value))
		}
		return &FloatTag{name: name, Value: math.Float32frombits(binary.BigEndian.Uint32(value))}, nil
	case TypeDouble:
		if len(value) != 8 {
			return nil, fmt.Errorf("%w: double value is %d bytes", ErrMalformed, len(value))
		}
		return &DoubleTag{name: name, Value: math.Float64frombits(binary.BigEndian.Uint64(value))}, nil
	case TypeShort:
		if len(value) != 2 {
			return nil, fmt.Errorf("%w: short value is %d bytes", ErrMalformed, len(value))
		}
		return &ShortTag{name: name, Value: int16(binary.BigEndian.Uint16(value))}, nil
	case TypeLong:
		if len(value) != 8 {
			return nil, fmt.Errorf("%w: long value is %d bytes", ErrMalformed, len(value))
		}
		return &LongTag{name: name, Value: int64(binary.BigEndian.Uint64(value))}, nil
	case TypeChar:
		if len(value) != 2 {
			return nil, fmt.Errorf("%w: char value is %d bytes", ErrMalformed, len(value))
		}
		return &CharTag{name: name, Value: rune(binary.BigEndian.Uint16(value))}, nil
	case TypeByte:
		if len(value) != 1 {
			return nil, fmt.Errorf("%w: byte value is %d bytes", ErrMalformed, len(value))
		}
		return &ByteTag{name: name, Value: value[0]}, nil
	case TypeList:
		children, err := DecodeTags(value)
		if err != nil {
			return nil, err
		}
		return &ListTag{name: name, Value: children}, nil
	case TypeMap:
		children, err := DecodeTags(value)
		if err != nil {
			return nil, err
		}
		entries := make(map[string]Tag, len(children))
		for _, child := range children {
			entries[child.Name()] = child
			child.SetName("")
		}
		return &MapTag{name: name, Value: entries}, nil
	case TypeObject:
		children, err := DecodeTags(value)
		if err != nil {
			return nil, err
		}
		return &ObjectTag{name: name, Value: children}, nil
	case TypeCompressedObject:
		return decodeCompressedValue(name, value)
	default:
		if fn, ok := customTagFor(typ); ok {
			return fn(name, append([]byte{}, value...))
		}
		if Tolerant() {
			return &InvalidTag{name: name, typ: typ, Value: append([]byte{}, value...)}, nil
		}
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
}
