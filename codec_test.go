// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	codec := JSONCodec{}

	in := map[string]any{
		"name":    "Ada",
		"age":     float64(36),
		"enabled": true,
		"tags":    []any{"math", "computing"},
	}

	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var out any
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(in, out.(map[string]any)) {
		t.Errorf("round trip mismatch:\n in: %#v\nout: %#v", in, out)
	}
}

func TestJSONCodecMarshalString(t *testing.T) {
	codec := JSONCodec{}

	data, err := codec.Marshal("bar")
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if data != `"bar"` {
		t.Errorf("Marshal(bar) = %q, want a JSON string, not bare text", data)
	}
}

func TestJSONCodecRawMessage(t *testing.T) {
	codec := JSONCodec{}

	data, err := codec.Marshal(json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if data != `{"a":1}` {
		t.Errorf("Marshal(RawMessage) = %q, want verbatim JSON", data)
	}
}

func TestJSONCodecMarshalError(t *testing.T) {
	codec := JSONCodec{}

	if _, err := codec.Marshal(make(chan int)); err == nil {
		t.Fatal("Marshal(chan) error = nil, want error")
	}
}
