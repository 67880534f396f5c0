// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "strings"

// replyErrorMarker is the literal prefix an embedded server error carries
// inside a status or bulk reply. The text after the marker and one
// delimiter is the server-supplied error message.
const replyErrorMarker = "-ERR"

// okReply is the status a successful JSON.SET returns.
const okReply = "OK"

// assertReplyNotError checks a reply string for the embedded error marker
// and converts it into a *ProtocolError.
func assertReplyNotError(op Command, rep string) error {
	if !strings.HasPrefix(rep, replyErrorMarker) {
		return nil
	}
	// Message starts after the marker and one delimiter character.
	msg := rep[len(replyErrorMarker):]
	if len(msg) > 0 {
		msg = msg[1:]
	}
	return &ProtocolError{Op: op.String(), Message: msg}
}

// assertBulkNotError validates an optional bulk reply. An absent reply is
// not an error.
func assertBulkNotError(op Command, rep *string) error {
	if rep == nil {
		return nil
	}
	return assertReplyNotError(op, *rep)
}

// assertMultiBulkNotError validates a multi-bulk reply. A server error
// manifests as a single-element reply even in multi-bulk context, so only
// position 0 is inspected.
func assertMultiBulkNotError(op Command, rep []*string) error {
	if len(rep) == 0 {
		return nil
	}
	return assertBulkNotError(op, rep[0])
}

// assertReplyOK validates a status reply that must be the literal OK.
// An embedded error marker takes precedence so the server message is
// preserved; any other non-OK status becomes a *ProtocolError carrying the
// status verbatim.
func assertReplyOK(op Command, status string) error {
	if err := assertReplyNotError(op, status); err != nil {
		return err
	}
	if status != okReply {
		return &ProtocolError{Op: op.String(), Message: status}
	}
	return nil
}

// JSONType describes the native type of a value stored in a document, as
// reported by JSON.TYPE.
type JSONType int

const (
	// TypeNull means no value is present at the path
	TypeNull JSONType = iota

	// TypeBoolean is a JSON boolean
	TypeBoolean

	// TypeInteger is a JSON number without a fractional part
	TypeInteger

	// TypeNumber is a JSON floating point number
	TypeNumber

	// TypeString is a JSON string
	TypeString

	// TypeObject is a JSON object (mapping)
	TypeObject

	// TypeArray is a JSON array (sequence)
	TypeArray
)

// String returns a human-readable name for the type
func (t JSONType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// jsonTypeFromName maps a JSON.TYPE reply string to its JSONType. Any
// string outside the fixed table fails with an *UnknownTypeError naming
// the offending reply.
func jsonTypeFromName(op Command, name string) (JSONType, error) {
	switch name {
	case "null":
		return TypeNull, nil
	case "boolean":
		return TypeBoolean, nil
	case "integer":
		return TypeInteger, nil
	case "number":
		return TypeNumber, nil
	case "string":
		return TypeString, nil
	case "object":
		return TypeObject, nil
	case "array":
		return TypeArray, nil
	default:
		return TypeNull, &UnknownTypeError{Op: op.String(), TypeName: name}
	}
}
