package ods

import (
	"io"
	"sort"
)

// MapTag is a composite tag whose children are keyed by name. On the wire
// each child's name is the map key; after decoding the key moves into the
// map and the child's own name is cleared so it is not stored twice.
//
// Entries encode in sorted key order so the byte image is deterministic.
type MapTag struct {
	name  string
	Value map[string]Tag
}

// NewMapTag creates a map tag holding the given entries.
func NewMapTag(name string, entries map[string]Tag) *MapTag {
	if entries == nil {
		entries = make(map[string]Tag)
	}
	return &MapTag{name: name, Value: entries}
}

func (t *MapTag) Type() TagType    { return TypeMap }
func (t *MapTag) Name() string     { return t.name }
func (t *MapTag) SetName(n string) { t.name = n }

func (t *MapTag) WriteValue(w io.Writer) error {
	keys := make([]string, 0, len(t.Value))
	for k := range t.Value {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		child := t.Value[k]
		child.SetName(k)
		if err := WriteTag(w, child); err != nil {
			return err
		}
	}
	return nil
}

// Put stores a child under the given key.
func (t *MapTag) Put(key string, child Tag) {
	t.Value[key] = child
}
