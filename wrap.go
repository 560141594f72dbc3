package ods

import (
	"fmt"
	"reflect"
)

// serializedMarker names the tag that records the Go type of a serialized
// struct. Unwrap does not inspect it; Deserialize skips it.
const serializedMarker = "ODS_TAG"

// Wrap converts a Go value into the matching tag. Scalars map onto the
// fixed-width tags (int32 becomes an IntTag, so runes meant as characters
// need NewCharTag), strings onto StringTag, slices onto ListTag, maps with
// string keys onto MapTag, and structs are serialized reflectively.
func Wrap(name string, v any) (Tag, error) {
	switch x := v.(type) {
	case Tag:
		x.SetName(name)
		return x, nil
	case string:
		return NewStringTag(name, x), nil
	case byte:
		return NewByteTag(name, x), nil
	case int8:
		return NewByteTag(name, byte(x)), nil
	case int16:
		return NewShortTag(name, x), nil
	case int32:
		return NewIntTag(name, x), nil
	case int:
		return NewLongTag(name, int64(x)), nil
	case int64:
		return NewLongTag(name, x), nil
	case float32:
		return NewFloatTag(name, x), nil
	case float64:
		return NewDoubleTag(name, x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		children := make([]Tag, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			child, err := Wrap("", rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return NewListTag(name, children), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("ods: cannot wrap map with %s keys", rv.Type().Key())
		}
		entries := make(map[string]Tag, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			child, err := Wrap("", iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			entries[iter.Key().String()] = child
		}
		return NewMapTag(name, entries), nil
	case reflect.Struct:
		return Serialize(name, v)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, fmt.Errorf("ods: cannot wrap nil pointer")
		}
		return Wrap(name, rv.Elem().Interface())
	}
	return nil, fmt.Errorf("ods: cannot wrap value of type %T", v)
}

// Unwrap returns the Go value a tag holds. Composites return their child
// tags (the map keyed by name); use Deserialize for serialized structs.
func Unwrap(t Tag) any {
	switch x := t.(type) {
	case *StringTag:
		return x.Value
	case *IntTag:
		return x.Value
	case *FloatTag:
		return x.Value
	case *DoubleTag:
		return x.Value
	case *ShortTag:
		return x.Value
	case *LongTag:
		return x.Value
	case *CharTag:
		return x.Value
	case *ByteTag:
		return x.Value
	case *ListTag:
		return x.Value
	case *MapTag:
		return x.Value
	case *ObjectTag:
		return x.Value
	case *CompressedObjectTag:
		return x.Value
	case *InvalidTag:
		return x.Value
	}
	return nil
}

// Serialize reflects over v's struct fields and builds an ObjectTag. Only
// fields carrying an `ods:"name"` tag participate; a marker child records
// the type name. At least one field must be serializable.
func Serialize(name string, v any) (*ObjectTag, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("ods: cannot serialize nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("ods: cannot serialize value of type %T", v)
	}
	obj := NewObjectTag(name)
	obj.AddTag(NewStringTag(serializedMarker, rv.Type().String()))
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tagName, ok := field.Tag.Lookup("ods")
		if !ok || tagName == "-" || !field.IsExported() {
			continue
		}
		child, err := Wrap(tagName, rv.Field(i).Interface())
		if err != nil {
			return nil, err
		}
		obj.AddTag(child)
	}
	if len(obj.Value) < 2 {
		return nil, fmt.Errorf("ods: no serializable fields in %T", v)
	}
	return obj, nil
}

// Deserialize fills out (a pointer to struct) from an ObjectTag produced by
// Serialize, matching children to fields by their `ods` tag.
func Deserialize(t *ObjectTag, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("ods: deserialize target must be a non-nil pointer, got %T", out)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("ods: deserialize target must point to a struct, got %T", out)
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tagName, ok := field.Tag.Lookup("ods")
		if !ok || tagName == "-" || !field.IsExported() {
			continue
		}
		child := t.GetTag(tagName)
		if child == nil {
			continue
		}
		if err := assignField(rv.Field(i), child); err != nil {
			return fmt.Errorf("ods: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func assignField(dst reflect.Value, src Tag) error {
	if obj, ok := src.(*ObjectTag); ok && dst.Kind() == reflect.Struct {
		return Deserialize(obj, dst.Addr().Interface())
	}
	if list, ok := src.(*ListTag); ok && dst.Kind() == reflect.Slice {
		out := reflect.MakeSlice(dst.Type(), len(list.Value), len(list.Value))
		for i, child := range list.Value {
			if err := assignField(out.Index(i), child); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}
	val := reflect.ValueOf(Unwrap(src))
	if !val.IsValid() {
		return fmt.Errorf("tag %q has no value", src.Name())
	}
	if !val.Type().ConvertibleTo(dst.Type()) {
		return fmt.Errorf("cannot assign %s to %s", val.Type(), dst.Type())
	}
	dst.Set(val.Convert(dst.Type()))
	return nil
}
