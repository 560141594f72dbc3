package ods

import (
	"fmt"
	"strings"
)

// scoutFrame records where one matched tag sits in the byte image.
// startIndex is the absolute offset of the tag's body-size field, one past
// the type byte; the full tag starts at startIndex-1 and ends at
// startIndex+4+size.
type scoutFrame struct {
	name       string
	size       int
	startIndex int
}

// keyScout is the trail left by walking a dotted key: one frame per matched
// ancestor in children, and the target tag in end when the full key
// resolves. A partial resolution leaves end nil with the matched prefix in
// children; the editor uses that to create missing parents.
type keyScout struct {
	children []scoutFrame
	end      *scoutFrame
}

// scoutKey walks data following key, recording offset and size breadcrumbs.
// It never materializes values. Recursion descends into matched composite
// bodies over explicit sub-ranges, so offsets stay absolute.
func scoutKey(data []byte, key string) (*keyScout, error) {
	sc := &keyScout{}
	if err := sc.walk(data, 0, len(data), key); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *keyScout) walk(data []byte, start, end int, key string) error {
	name, rest, more := strings.Cut(key, ".")
	pos := start
	for pos < end {
		p, err := readPrologue(data[pos:end])
		if err != nil {
			return err
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
		frame := scoutFrame{name: tagName, size: p.bodySize, startIndex: pos + 1}
		if more {
			if p.typ == TypeCompressedObject {
				return fmt.Errorf("%w: %q", ErrCompressedTraversal, tagName)
			}
			sc.children = append(sc.children, frame)
			return sc.walk(data, pos+7+p.nameLen, pos+p.total, rest)
		}
		sc.end = &frame
		return nil
	}
	return nil
}
