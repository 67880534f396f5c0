// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

// Client configuration options using the functional options pattern

// WithCodec configures the value codec used to serialize payload values
// and deserialize JSON replies.
//
// The default codec is JSONCodec (encoding/json). The codec is an explicit
// dependency of the client; there is no package-level shared instance.
//
// Example:
//
//	client, _ := rejson.NewClient(conn, rejson.WithCodec(myCodec))
func WithCodec(codec Codec) func(*Client) {
	return func(c *Client) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithLogger configures a custom logger for the client.
//
// By default the client uses NoOpLogger, which discards all log messages.
// Use this option to enable logging with DefaultLogger or a custom logger.
//
// Example:
//
//	logger := rejson.NewDefaultLogger(rejson.LogLevelDebug)
//	client, _ := rejson.NewClient(conn, rejson.WithLogger(logger))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
