// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

// Conn is the transport a Client issues commands over. It is caller-owned
// and caller-synchronized: this library sends exactly one command per call
// and immediately reads its reply, and it never retries, times out or
// pipelines. Errors returned by a Conn are propagated to the caller
// unchanged.
//
// Each command expects exactly one reply shape; the client calls the
// reader matching the issued command. Calling the wrong reader for what
// the server actually returned is an integration bug, not something this
// layer defends against.
//
// The redisconn subpackage provides a minimal implementation over a TCP
// connection.
type Conn interface {
	// SendCommand writes one command with its ordered arguments
	SendCommand(name string, args [][]byte) error

	// ReadStatusReply reads a status line reply (for example "OK")
	ReadStatusReply() (string, error)

	// ReadBulkReply reads a bulk string reply; nil means absent
	ReadBulkReply() (*string, error)

	// ReadIntegerReply reads an integer reply
	ReadIntegerReply() (int64, error)

	// ReadMultiBulkReply reads an ordered sequence of bulk strings;
	// nil elements mean absent values
	ReadMultiBulkReply() ([]*string, error)
}
