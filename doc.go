// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package rejson provides a simple, typed API for the RedisJSON module
// commands (JSON.GET, JSON.SET, JSON.ARRAPPEND, ...).
//
// The library is a pure command codec: it encodes each logical operation
// into the exact ordered wire argument list, sends it as a single command
// over a caller-supplied connection, and decodes the raw reply into a typed
// result, surfacing server errors as typed failures. Connection management,
// pooling, retries and pipelining are deliberately left to the transport.
//
// # Quick Start
//
// Create a client around a connection and perform basic operations:
//
//	conn, err := redisconn.Dial("localhost:6379")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	client, err := rejson.NewClient(conn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store a value at the document root
//	err = client.Set("user:1", map[string]any{"name": "Ada", "age": 36})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch it back
//	res, err := client.Get("user:1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.GetValue("name").String()) // "Ada"
//
// # Paths
//
// Every operation addresses a position inside the stored document via a
// Path. By default operations target the document root; sub-paths are
// passed with the AtPath request modifier or as an explicit parameter:
//
//	age, err := client.NumIncrBy("user:1", rejson.NewPath(".age"), 1)
//
// Operations that take at most one path fail with an *ArgumentError before
// anything is sent when more than one AtPath modifier is supplied.
//
// # JSON Manipulation
//
// Use the Body builder for constructing JSON payloads:
//
//	body := rejson.Body{}.
//	    Set("name", "Ada").
//	    Set("tags.0", "math").
//	    Set("tags.1", "computing")
//
//	doc, err := body.Value()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = client.Set("user:1", doc)
//
// # Error Handling
//
// Failures are typed and can be told apart with errors.As:
//
//   - *ProtocolError: the server replied with an error; the message is the
//     server-supplied text.
//   - *ArgumentError: the call violated an argument contract (for example
//     two paths where at most one is allowed); nothing was sent.
//   - *UnknownTypeError: a JSON.TYPE reply named a type this library does
//     not recognize.
//
// Errors returned by the connection itself are propagated unchanged.
//
// # Thread Safety
//
// The client holds no mutable state of its own, but a connection carries
// exactly one in-flight command at a time: issuing a command and reading
// its reply must not interleave with another command on the same
// connection. Share a Client across goroutines only if each call path owns
// a distinct connection, or synchronize externally.
//
// # References
//
//   - RedisJSON commands: https://redis.io/docs/latest/develop/data-types/json/
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
package rejson
