package ods

import (
	"bytes"
	"testing"
)

// bodySizeAt reads the on-wire body size of the tag at key.
func bodySizeAt(t *testing.T, data []byte, key string) int {
	t.Helper()
	sc, err := scoutKey(data, key)
	if err != nil {
		t.Fatalf("scout %q: %v", key, err)
	}
	if sc.end == nil {
		t.Fatalf("scout %q: key did not resolve", key)
	}
	return sc.end.size
}

func encodedLen(t *testing.T, tag Tag) int {
	t.Helper()
	enc, err := EncodeTag(tag)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return len(enc)
}

func TestDeleteImage(t *testing.T) {
	data := carImage(t)
	carBefore := bodySizeAt(t, data, "Car")
	removed := encodedLen(t, NewIntTag("gas", 30))

	out, ok, err := deleteImage(data, "Car.gas")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatalf("delete did not resolve")
	}
	if len(out) != len(data)-removed {
		t.Fatalf("image shrank by %d, want %d", len(data)-len(out), removed)
	}

	found, err := FindTag(out, "Car.gas")
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if found {
		t.Fatalf("Car.gas still present after delete")
	}

	// Siblings survive untouched.
	first, err := GetTag(out, "Car.Owner.firstName")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if s := first.(*StringTag); s.Value != "Jeff" {
		t.Fatalf("firstName after delete = %q", s.Value)
	}

	if got := bodySizeAt(t, out, "Car"); got != carBefore-removed {
		t.Fatalf("Car body size %d, want %d", got, carBefore-removed)
	}

	if _, err := DecodeTags(out); err != nil {
		t.Fatalf("image no longer decodes: %v", err)
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	data := carImage(t)
	out, ok, err := deleteImage(data, "Car.nope")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok {
		t.Fatalf("absent delete reported success")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("absent delete modified the image")
	}
}

func TestReplaceGrowsAncestors(t *testing.T) {
	data := carImage(t)
	carBefore := bodySizeAt(t, data, "Car")
	ownerBefore := bodySizeAt(t, data, "Car.Owner")

	out, ok, err := replaceImage(data, "Car.Owner.firstName", NewStringTag("firstName", "Jeffrey"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !ok {
		t.Fatalf("replace did not resolve")
	}

	got, err := GetTag(out, "Car.Owner.firstName")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if s := got.(*StringTag); s.Value != "Jeffrey" {
		t.Fatalf("firstName after replace = %q", s.Value)
	}

	// "Jeffrey" is three bytes longer than "Jeff".
	if got := bodySizeAt(t, out, "Car"); got != carBefore+3 {
		t.Fatalf("Car body size %d, want %d", got, carBefore+3)
	}
	if got := bodySizeAt(t, out, "Car.Owner"); got != ownerBefore+3 {
		t.Fatalf("Owner body size %d, want %d", got, ownerBefore+3)
	}

	if _, err := DecodeTags(out); err != nil {
		t.Fatalf("image no longer decodes: %v", err)
	}
}

func TestReplaceShrinks(t *testing.T) {
	data := carImage(t)
	out, ok, err := replaceImage(data, "Car.Owner.firstName", NewStringTag("firstName", "J"))
	if err != nil || !ok {
		t.Fatalf("replace: ok=%v err=%v", ok, err)
	}
	if len(out) != len(data)-3 {
		t.Fatalf("image length %d, want %d", len(out), len(data)-3)
	}
	if _, err := DecodeTags(out); err != nil {
		t.Fatalf("image no longer decodes: %v", err)
	}
}

func TestSetAutoCreatesParents(t *testing.T) {
	data := carImage(t)
	carBefore := bodySizeAt(t, data, "Car")
	ownerBefore := bodySizeAt(t, data, "Car.Owner")

	out, err := setImage(data, "Car.Owner.MEGAOOF.MULTIPLEFILES.test", NewStringTag("Test", "test"))
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	// The stored leaf name is the tag's own name, not the key segment.
	got, err := GetTag(out, "Car.Owner.MEGAOOF.MULTIPLEFILES.Test")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s := got.(*StringTag); s.Value != "test" {
		t.Fatalf("leaf value %q", s.Value)
	}
	found, err := FindTag(out, "Car.Owner.MEGAOOF.MULTIPLEFILES.test")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found {
		t.Fatalf("key segment name was stored instead of the tag name")
	}

	grown := len(out) - len(data)
	if got := bodySizeAt(t, out, "Car"); got != carBefore+grown {
		t.Fatalf("Car body size %d, want %d", got, carBefore+grown)
	}
	if got := bodySizeAt(t, out, "Car.Owner"); got != ownerBefore+grown {
		t.Fatalf("Owner body size %d, want %d", got, ownerBefore+grown)
	}

	if _, err := DecodeTags(out); err != nil {
		t.Fatalf("image no longer decodes: %v", err)
	}
}

func TestSetSingleMissingSegmentUsesTagDirectly(t *testing.T) {
	data := carImage(t)
	out, err := setImage(data, "Car.Owner.nickname", NewStringTag("nick", "JB"))
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := GetTag(out, "Car.Owner.nick")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s := got.(*StringTag); s.Value != "JB" {
		t.Fatalf("nick = %q", s.Value)
	}
}

func TestSetResolvedKeyReplaces(t *testing.T) {
	data := carImage(t)
	out, err := setImage(data, "Car.gas", NewIntTag("gas", 55))
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := GetTag(out, "Car.gas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n := got.(*IntTag); n.Value != 55 {
		t.Fatalf("gas = %d", n.Value)
	}
	if len(out) != len(data) {
		t.Fatalf("same-size replace changed image length by %d", len(out)-len(data))
	}
}

func TestSetUnresolvedKeyAppendsTopLevel(t *testing.T) {
	data := carImage(t)
	out, err := setImage(data, "Bike", NewObjectTagWith("Bike", []Tag{NewIntTag("wheels", 2)}))
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	tags, err := DecodeTags(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("top level has %d tags", len(tags))
	}
	if tags[1].Name() != "Bike" {
		t.Fatalf("appended tag is %q", tags[1].Name())
	}
}

func TestDeleteThenReAddRestoresTree(t *testing.T) {
	data := carImage(t)
	gas := NewIntTag("gas", 30)

	out, ok, err := deleteImage(data, "Car.gas")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	out, err = setImage(out, "Car.gas", gas)
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := GetTag(out, "Car.gas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n := got.(*IntTag); n.Value != 30 {
		t.Fatalf("gas = %d", n.Value)
	}
	if len(out) != len(data) {
		t.Fatalf("image length %d after re-add, want %d", len(out), len(data))
	}
	if got, want := bodySizeAt(t, out, "Car"), bodySizeAt(t, data, "Car"); got != want {
		t.Fatalf("Car body size %d after re-add, want %d", got, want)
	}
}

func TestScoutPartialResolution(t *testing.T) {
	data := carImage(t)
	sc, err := scoutKey(data, "Car.Owner.MEGAOOF.deep")
	if err != nil {
		t.Fatalf("scout: %v", err)
	}
	if sc.end != nil {
		t.Fatalf("partial scout produced an end frame")
	}
	if len(sc.children) != 2 || sc.children[0].name != "Car" || sc.children[1].name != "Owner" {
		t.Fatalf("matched prefix %#v", sc.children)
	}
}

func TestScoutFrameOffsets(t *testing.T) {
	data := carImage(t)
	sc, err := scoutKey(data, "Car.Owner.Age")
	if err != nil {
		t.Fatalf("scout: %v", err)
	}
	if sc.end == nil {
		t.Fatalf("key did not resolve")
	}
	// Each frame's startIndex addresses the body-size field: the byte before
	// it is the type byte.
	for _, f := range append(sc.children, *sc.end) {
		if data[f.startIndex-1] != byte(TypeObject) && data[f.startIndex-1] != byte(TypeInt) {
			t.Fatalf("frame %q start index %d does not follow a type byte", f.name, f.startIndex)
		}
	}
}
