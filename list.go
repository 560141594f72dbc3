package ods

import "io"

// ListTag is a composite tag whose children carry no names on the wire.
// WriteValue clears each child's name before encoding it.
type ListTag struct {
	name  string
	Value []Tag
}

// NewListTag creates a list tag holding the given children.
func NewListTag(name string, children []Tag) *ListTag {
	return &ListTag{name: name, Value: children}
}

func (t *ListTag) Type() TagType    { return TypeList }
func (t *ListTag) Name() string     { return t.name }
func (t *ListTag) SetName(n string) { t.name = n }

func (t *ListTag) WriteValue(w io.Writer) error {
	for _, child := range t.Value {
		child.SetName("")
		if err := WriteTag(w, child); err != nil {
			return err
		}
	}
	return nil
}

// AddTag appends a child tag.
func (t *ListTag) AddTag(child Tag) {
	t.Value = append(t.Value, child)
}
