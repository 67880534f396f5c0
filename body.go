// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// Body provides a fluent interface for building JSON documents using sjson
// for path-based manipulation, typically as payloads for Set, ArrAppend or
// ArrInsert.
//
// The Body builder tracks errors internally to enable method chaining
// while providing error checking through String() or Err() methods.
//
// Example:
//
//	body := rejson.Body{}.
//	    Set("name", "Ada").
//	    Set("age", 36).
//	    Set("tags.0", "math")
//
//	doc, err := body.Value()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = client.Set("user:1", doc)
type Body struct {
	// str contains the JSON string being built
	str string
	// err tracks the first error encountered during building
	err error
}

// Set sets a value at the specified JSON path and returns a new Body.
//
// The path uses dot notation for nested fields (e.g., "address.city").
// The value can be any type that sjson supports (string, number, bool,
// slices, maps).
//
// If an error occurs, the error is stored and returned by String() or
// Err(). Once an error occurs, all subsequent operations are no-ops that
// preserve the error.
//
// Returns the Body for method chaining.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Delete removes a value at the specified JSON path and returns a new Body.
//
// Returns the Body for method chaining.
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the JSON text and any error encountered during building.
func (b Body) String() (string, error) {
	return b.str, b.err
}

// Err returns any error that occurred during the building process.
func (b Body) Err() error {
	return b.err
}

// Value returns the document as a json.RawMessage suitable for passing
// directly to write operations: the default codec serializes a
// json.RawMessage verbatim, so the built JSON is stored as-is rather than
// re-encoded as a string.
//
// Example:
//
//	doc, err := rejson.Body{}.Set("enabled", true).Value()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = client.Set("feature:1", doc)
func (b Body) Value() (json.RawMessage, error) {
	if b.err != nil {
		return nil, b.err
	}
	return json.RawMessage(b.str), nil
}

// Bytes returns the JSON byte slice representation and any error
// encountered during building.
func (b Body) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []byte(b.str), nil
}
