package ods

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
)

// FromJSON parses a JSON document with simdjson-go and converts it into a
// tag named name. Objects become ObjectTags, arrays ListTags, strings
// StringTags, integers LongTags, other numbers DoubleTags, and booleans
// ByteTags holding 0 or 1. JSON null has no tag representation and fails.
func FromJSON(name string, data []byte) (Tag, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("ods: json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	return tagFromJSONIter(name, typ, root)
}

func tagFromJSONIter(name string, typ simdjson.Type, it *simdjson.Iter) (Tag, error) {
	switch typ {
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return nil, err
		}
		var b byte
		if v {
			b = 1
		}
		return NewByteTag(name, b), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return nil, err
		}
		return NewLongTag(name, v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return NewDoubleTag(name, float64(v)), nil
		}
		return NewLongTag(name, int64(v)), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return nil, err
		}
		return NewDoubleTag(name, v), nil
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return NewStringTag(name, string(b)), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		out := NewObjectTag(name)
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			child, err := tagFromJSONIter(string(key), elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			out.AddTag(child)
		}, nil)
		if err != nil {
			return nil, err
		}
		if parseErr != nil {
			return nil, parseErr
		}
		return out, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		var children []Tag
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			child, err := tagFromJSONIter("", t, &elem)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return NewListTag(name, children), nil
	default:
		return nil, fmt.Errorf("ods: unsupported json type: %v", typ)
	}
}

// ToJSON renders a tag tree as a JSON value. Names are dropped at the root;
// Object and Map children key by name, List children become array elements.
// CompressedObject renders like an Object.
func ToJSON(t Tag) (string, error) {
	var sb strings.Builder
	if err := writeJSONTag(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSONTag(sb *strings.Builder, t Tag) error {
	switch x := t.(type) {
	case *StringTag:
		sb.WriteString(strconv.Quote(x.Value))
	case *IntTag:
		sb.WriteString(strconv.FormatInt(int64(x.Value), 10))
	case *ShortTag:
		sb.WriteString(strconv.FormatInt(int64(x.Value), 10))
	case *LongTag:
		sb.WriteString(strconv.FormatInt(x.Value, 10))
	case *ByteTag:
		sb.WriteString(strconv.FormatUint(uint64(x.Value), 10))
	case *CharTag:
		sb.WriteString(strconv.Quote(string(x.Value)))
	case *FloatTag:
		sb.WriteString(strconv.FormatFloat(float64(x.Value), 'g', -1, 32))
	case *DoubleTag:
		sb.WriteString(strconv.FormatFloat(x.Value, 'g', -1, 64))
	case *ListTag:
		sb.WriteByte('[')
		for i, child := range x.Value {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeJSONTag(sb, child); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case *ObjectTag:
		return writeJSONChildren(sb, x.Value)
	case *CompressedObjectTag:
		return writeJSONChildren(sb, x.Value)
	case *MapTag:
		keys := make([]string, 0, len(x.Value))
		for k := range x.Value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			if err := writeJSONTag(sb, x.Value[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("ods: cannot render %T as json", t)
	}
	return nil
}

func writeJSONChildren(sb *strings.Builder, children []Tag) error {
	sb.WriteByte('{')
	for i, child := range children {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(child.Name()))
		sb.WriteByte(':')
		if err := writeJSONTag(sb, child); err != nil {
			return err
		}
	}
	sb.WriteByte('}')
	return nil
}
