package ods

import (
	"encoding/json"
	"testing"

	"github.com/minio/simdjson-go"
)

func TestFromJSON(t *testing.T) {
	if !simdjson.SupportedCPU() {
		t.Skip("cpu lacks simdjson support")
	}
	src := []byte(`{"type":"Jeep","gas":30,"Owner":{"firstName":"Jeff","ok":true},"coords":[10,5,10]}`)
	tag, err := FromJSON("Car", src)
	if err != nil {
		t.Fatalf("fromjson: %v", err)
	}
	car := tag.(*ObjectTag)
	if car.Name() != "Car" {
		t.Fatalf("root name %q", car.Name())
	}

	// The tree survives the wire.
	data := mustEncode(t, car)
	got, err := GetTag(data, "Car.Owner.firstName")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s := got.(*StringTag); s.Value != "Jeff" {
		t.Fatalf("firstName = %q", s.Value)
	}
	got, err = GetTag(data, "Car.gas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n := got.(*LongTag); n.Value != 30 {
		t.Fatalf("gas = %d", n.Value)
	}
	got, err = GetTag(data, "Car.Owner.ok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b := got.(*ByteTag); b.Value != 1 {
		t.Fatalf("ok = %d", b.Value)
	}
	got, err = GetTag(data, "Car.coords")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l := got.(*ListTag); len(l.Value) != 3 {
		t.Fatalf("coords has %d elements", len(l.Value))
	}
}

func TestToJSONIsValidJSON(t *testing.T) {
	car := NewObjectTag("Car")
	car.AddTag(NewStringTag("type", "Jeep"))
	car.AddTag(NewIntTag("gas", 30))
	car.AddTag(NewListTag("coords", []Tag{NewIntTag("", 10), NewIntTag("", 5)}))
	owner := NewObjectTag("Owner")
	owner.AddTag(NewStringTag("firstName", "Jeff"))
	car.AddTag(owner)

	out, err := ToJSON(car)
	if err != nil {
		t.Fatalf("tojson: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if v["type"] != "Jeep" {
		t.Fatalf("type = %v", v["type"])
	}
	inner, ok := v["Owner"].(map[string]any)
	if !ok || inner["firstName"] != "Jeff" {
		t.Fatalf("Owner = %v", v["Owner"])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	if !simdjson.SupportedCPU() {
		t.Skip("cpu lacks simdjson support")
	}
	src := []byte(`{"a":1,"b":[true,false],"c":{"d":"x"}}`)
	tag, err := FromJSON("", src)
	if err != nil {
		t.Fatalf("fromjson: %v", err)
	}
	out, err := ToJSON(tag)
	if err != nil {
		t.Fatalf("tojson: %v", err)
	}
	var v any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if _, err := FromJSON("", []byte(out)); err != nil {
		t.Fatalf("fromjson roundtrip: %v", err)
	}
}
