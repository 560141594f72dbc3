package ods

import (
	"fmt"
	"strings"
)

// GetTag resolves a dotted key against the encoded tag sequence in data and
// materializes the matching tag. A nil Tag with a nil error means the key is
// absent. Duplicate sibling names resolve to the first match.
func GetTag(data []byte, key string) (Tag, error) {
	name, rest, more := strings.Cut(key, ".")
	pos := 0
	for pos < len(data) {
		p, err := readPrologue(data[pos:])
		if err != nil {
			return nil, err
		}
		// Skip without reading the name when the lengths already disagree.
		if p.nameLen != len(name) {
			pos += p.total
			continue
		}
		tagName := string(data[pos+7 : pos+7+p.nameLen])
		if tagName != name {
			pos += p.total
			continue
		}
		value := data[pos+7+p.nameLen : pos+p.total]
		if more {
			if p.typ == TypeCompressedObject {
				return nil, fmt.Errorf("%w: %q", ErrCompressedTraversal, tagName)
			}
			return GetTag(value, rest)
		}
		return decodeValue(p.typ, tagName, value)
	}
	return nil, nil
}

// FindTag reports whether a dotted key resolves. It never materializes the
// tag.
func FindTag(data []byte, key string) (bool, error) {
	name, rest, more := strings.Cut(key, ".")
	pos := 0
	for pos < len(data) {
		p, err := readPrologue(data[pos:])
		if err != nil {
			return false, err
		}
		if p.nameLen != len(name) {
			pos += p.total
			continue
		}
		tagName := string(data[pos+7 : pos+7+p.nameLen])
		if tagName != name {
			pos += p.total
			continue
		}
		if more {
			if p.typ == TypeCompressedObject {
				return false, fmt.Errorf("%w: %q", ErrCompressedTraversal, tagName)
			}
			return FindTag(data[pos+7+p.nameLen:pos+p.total], rest)
		}
		return true, nil
	}
	return false, nil
}
