// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "fmt"

// Client issues RedisJSON commands over a caller-supplied connection.
//
// The client is a pure codec: every operation encodes its argument vector,
// sends it as one command, reads exactly one reply of the shape the
// command declares, and converts it into the operation's result type. No
// retry, timeout, pooling or pipelining happens here; the connection and
// its synchronization belong to the caller.
type Client struct {
	// conn is the transport commands are sent over
	conn Conn

	// codec serializes payload values and deserializes JSON replies
	codec Codec

	// logger receives structured command/reply diagnostics
	logger Logger
}

// NewClient creates a client around an established connection.
//
// By default values are serialized with encoding/json and logging is
// disabled; both are configurable via functional options.
//
// Example:
//
//	client, err := rejson.NewClient(conn,
//	    rejson.WithLogger(rejson.NewDefaultLogger(rejson.LogLevelInfo)))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewClient(conn Conn, opts ...func(*Client)) (*Client, error) {
	if conn == nil {
		return nil, fmt.Errorf("rejson: connection must not be nil")
	}

	client := &Client{
		conn:   conn,
		codec:  JSONCodec{},
		logger: &NoOpLogger{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// send dispatches one encoded command. The command's wire name is attached
// here; args carry everything after it.
func (c *Client) send(cmd Command, args [][]byte) error {
	c.logger.Debug("sending command",
		"command", cmd.String(),
		"args", len(args))
	return c.conn.SendCommand(cmd.String(), args)
}
