package ods

import "io"

// ObjectTag is a composite tag whose value is a sequence of arbitrarily
// named child tags.
type ObjectTag struct {
	name  string
	Value []Tag
}

// NewObjectTag creates an empty object tag.
func NewObjectTag(name string) *ObjectTag {
	return &ObjectTag{name: name}
}

// NewObjectTagWith creates an object tag holding the given children.
func NewObjectTagWith(name string, children []Tag) *ObjectTag {
	return &ObjectTag{name: name, Value: children}
}

func (t *ObjectTag) Type() TagType    { return TypeObject }
func (t *ObjectTag) Name() string     { return t.name }
func (t *ObjectTag) SetName(n string) { t.name = n }

func (t *ObjectTag) WriteValue(w io.Writer) error {
	for _, child := range t.Value {
		if err := WriteTag(w, child); err != nil {
			return err
		}
	}
	return nil
}

// AddTag appends a child tag.
func (t *ObjectTag) AddTag(child Tag) {
	t.Value = append(t.Value, child)
}

// GetTag returns the first child with the given name, or nil.
func (t *ObjectTag) GetTag(name string) Tag {
	for _, child := range t.Value {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// HasTag reports whether a child with the given name exists.
func (t *ObjectTag) HasTag(name string) bool {
	return t.GetTag(name) != nil
}

// RemoveTag removes every child with the given name.
func (t *ObjectTag) RemoveTag(name string) {
	kept := t.Value[:0]
	for _, child := range t.Value {
		if child.Name() != name {
			kept = append(kept, child)
		}
	}
	t.Value = kept
}

// RemoveAllTags removes every child.
func (t *ObjectTag) RemoveAllTags() {
	t.Value = nil
}
