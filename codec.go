// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "encoding/json"

// Codec serializes values to JSON text and back.
//
// Payload values handed to write operations are always passed through
// Marshal before being encoded as a command argument; bulk replies from
// read operations are passed through Unmarshal. A Codec must be stateless
// per call and safe to share across goroutines.
type Codec interface {
	// Marshal serializes a value to JSON text
	Marshal(v any) (string, error)

	// Unmarshal deserializes JSON text into the value pointed to by v
	Unmarshal(data string, v any) error
}

// JSONCodec is the default Codec, backed by encoding/json.
type JSONCodec struct{}

// Marshal serializes a value to JSON text using encoding/json
func (JSONCodec) Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal deserializes JSON text using encoding/json
func (JSONCodec) Unmarshal(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}
