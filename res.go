// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "github.com/tidwall/gjson"

// GetRes represents a JSON.GET reply.
//
// Raw is the JSON text exactly as the server sent it; Value is the same
// text deserialized through the client's codec (a map[string]any, []any,
// string, float64, bool or nil for the default JSONCodec).
type GetRes struct {
	// Raw is the unparsed JSON reply text
	Raw string

	// Value is the reply deserialized via the client's codec
	Value any
}

// GetValue retrieves a value from the reply using a gjson path.
//
// This avoids type assertions on Value for simple lookups. The path
// follows gjson syntax for querying JSON structures.
//
// Returns gjson.Result which can be converted to specific types:
//   - result.String() for string values
//   - result.Int() for integer values
//   - result.Bool() for boolean values
//   - result.Array() for array values
//
// Example:
//
//	res, err := client.Get("user:1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name := res.GetValue("name").String()
//	age := res.GetValue("age").Int()
func (r GetRes) GetValue(path string) gjson.Result {
	if r.Raw == "" {
		return gjson.Result{}
	}
	return gjson.Get(r.Raw, path)
}

// JSON returns the reply as JSON text. This is useful for debugging,
// logging, or custom parsing.
func (r GetRes) JSON() string {
	return r.Raw
}
