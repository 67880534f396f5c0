// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "fmt"

// ProtocolError represents an error reply sent by the server for a
// structurally valid command, for example setting with the NX modifier on
// an existing key. The message is the server-supplied text.
type ProtocolError struct {
	// Op is the wire name of the command that failed
	Op string

	// Message is the error text as sent by the server
	Message string
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rejson: %s failed: %s", e.Op, e.Message)
}

// ArgumentError represents a caller-side contract violation detected
// before any command is sent, for example supplying two paths to an
// operation that accepts at most one.
type ArgumentError struct {
	// Op is the wire name of the command that was being encoded
	Op string

	// Message describes the violated contract
	Message string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rejson: %s: %s", e.Op, e.Message)
}

// UnknownTypeError represents a JSON.TYPE reply naming a type this library
// does not recognize.
type UnknownTypeError struct {
	// Op is the wire name of the command that produced the reply
	Op string

	// TypeName is the unrecognized type string from the server
	TypeName string
}

// Error implements the error interface
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("rejson: %s returned unrecognized JSON type %q", e.Op, e.TypeName)
}
