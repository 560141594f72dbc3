package ods

import (
	"encoding/binary"
	"strings"
)

// patchSizes rewrites each frame's 4-byte body-size field in out, adjusted
// by delta. Frames write to disjoint ranges inside the unchanged prefix of
// the splice, so their recorded offsets remain valid in the output.
func patchSizes(out []byte, frames []scoutFrame, delta int) {
	for _, f := range frames {
		binary.BigEndian.PutUint32(out[f.startIndex:f.startIndex+4], uint32(f.size+delta))
	}
}

// spliceTag replaces the end tag's full byte span with repl (nil deletes)
// and patches every ancestor's body size by the length delta.
func spliceTag(data []byte, sc *keyScout, repl []byte) []byte {
	e := sc.end
	prefixEnd := e.startIndex - 1
	suffixStart := e.startIndex + 4 + e.size
	delta := len(repl) - (e.size + 5)
	out := make([]byte, 0, len(data)+delta)
	out = append(out, data[:prefixEnd]...)
	out = append(out, repl...)
	out = append(out, data[suffixStart:]...)
	patchSizes(out, sc.children, delta)
	return out
}

// insertTag splices ins immediately after the last byte of the innermost
// matched ancestor's value region and grows every ancestor's body size,
// the insertion parent included.
func insertTag(data []byte, sc *keyScout, ins []byte) []byte {
	c := sc.children[len(sc.children)-1]
	p := c.startIndex + 4 + c.size
	out := make([]byte, 0, len(data)+len(ins))
	out = append(out, data[:p]...)
	out = append(out, ins...)
	out = append(out, data[p:]...)
	patchSizes(out, sc.children, len(ins))
	return out
}

// deleteImage removes the tag at key from the image. The bool reports
// whether the key resolved; an unresolved key returns the image unchanged.
func deleteImage(data []byte, key string) ([]byte, bool, error) {
	sc, err := scoutKey(data, key)
	if err != nil {
		return nil, false, err
	}
	if sc.end == nil {
		return data, false, nil
	}
	return spliceTag(data, sc, nil), true, nil
}

// replaceImage swaps the tag at key for t. The bool reports whether the key
// resolved.
func replaceImage(data []byte, key string, t Tag) ([]byte, bool, error) {
	sc, err := scoutKey(data, key)
	if err != nil {
		return nil, false, err
	}
	if sc.end == nil {
		return data, false, nil
	}
	enc, err := EncodeTag(t)
	if err != nil {
		return nil, false, err
	}
	return spliceTag(data, sc, enc), true, nil
}

// setImage stores t at key. A fully resolved key behaves as replace. A
// partially resolved key synthesizes the missing intermediate objects:
// every missing segment except the last becomes an ObjectTag, and the tag
// itself lands inside the innermost one under its own name (the trailing
// key segment is ignored). An unresolved key appends at the top level.
func setImage(data []byte, key string, t Tag) ([]byte, error) {
	sc, err := scoutKey(data, key)
	if err != nil {
		return nil, err
	}
	if sc.end != nil {
		enc, err := EncodeTag(t)
		if err != nil {
			return nil, err
		}
		return spliceTag(data, sc, enc), nil
	}
	if len(sc.children) == 0 {
		enc, err := EncodeTag(t)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, len(data)+len(enc))
		out = append(out, data...)
		return append(out, enc...), nil
	}

	matched := make([]string, len(sc.children))
	for i, c := range sc.children {
		matched[i] = c.name
	}
	remaining := strings.TrimPrefix(key, strings.Join(matched, ".")+".")
	segments := strings.Split(remaining, ".")

	chain := t
	if len(segments) > 1 {
		root := NewObjectTag(segments[0])
		cur := root
		for _, s := range segments[1 : len(segments)-1] {
			next := NewObjectTag(s)
			cur.AddTag(next)
			cur = next
		}
		cur.AddTag(t)
		chain = root
	}
	enc, err := EncodeTag(chain)
	if err != nil {
		return nil, err
	}
	return insertTag(data, sc, enc), nil
}
