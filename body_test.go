// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestBodySet(t *testing.T) {
	body := Body{}.
		Set("name", "Ada").
		Set("age", 36).
		Set("address.city", "London").
		Set("tags.0", "math").
		Set("tags.1", "computing")

	json, err := body.String()
	if err != nil {
		t.Fatalf("Body build failed: %v", err)
	}

	if gjson.Get(json, "name").String() != "Ada" {
		t.Errorf("name = %q, want %q", gjson.Get(json, "name").String(), "Ada")
	}
	if gjson.Get(json, "age").Int() != 36 {
		t.Errorf("age = %d, want 36", gjson.Get(json, "age").Int())
	}
	if gjson.Get(json, "address.city").String() != "London" {
		t.Errorf("address.city = %q, want %q", gjson.Get(json, "address.city").String(), "London")
	}
	if gjson.Get(json, "tags.1").String() != "computing" {
		t.Errorf("tags.1 = %q, want %q", gjson.Get(json, "tags.1").String(), "computing")
	}
}

func TestBodyDelete(t *testing.T) {
	body := Body{}.
		Set("name", "Ada").
		Set("temp", "x").
		Delete("temp")

	json, err := body.String()
	if err != nil {
		t.Fatalf("Body build failed: %v", err)
	}

	if gjson.Get(json, "temp").Exists() {
		t.Error("deleted field still present")
	}
	if gjson.Get(json, "name").String() != "Ada" {
		t.Error("unrelated field lost")
	}
}

func TestBodyErrorShortCircuits(t *testing.T) {
	// An invalid sjson path puts the builder in an error state; later
	// operations must preserve the error and the last good document.
	body := Body{}.
		Set("name", "Ada").
		Set("", "bad").
		Set("age", 36)

	if body.Err() == nil {
		t.Fatal("Err() = nil, want error from invalid path")
	}

	if _, err := body.Value(); err == nil {
		t.Error("Value() must surface the build error")
	}
	if _, err := body.Bytes(); err == nil {
		t.Error("Bytes() must surface the build error")
	}
}

func TestBodyValueStoresVerbatim(t *testing.T) {
	doc, err := Body{}.Set("enabled", true).Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}

	// json.RawMessage payloads pass through the default codec unchanged.
	conn := &fakeConn{status: "OK"}
	client, err := NewClient(conn)
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	if err := client.Set("feature:1", doc); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	if got := string(conn.sentArgs[2]); got != `{"enabled":true}` {
		t.Errorf("payload = %q, want the built JSON verbatim", got)
	}
}
