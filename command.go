// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import "strconv"

// Command identifies one RedisJSON operation by its fixed wire name.
//
// The set of commands is closed; the constants below are the only values
// ever sent on the wire.
type Command string

// Wire names of the supported RedisJSON commands
const (
	CmdDel       Command = "JSON.DEL"
	CmdGet       Command = "JSON.GET"
	CmdSet       Command = "JSON.SET"
	CmdType      Command = "JSON.TYPE"
	CmdMGet      Command = "JSON.MGET"
	CmdNumIncrBy Command = "JSON.NUMINCRBY"
	CmdNumMultBy Command = "JSON.NUMMULTBY"
	CmdObjKeys   Command = "JSON.OBJKEYS"
	CmdObjLen    Command = "JSON.OBJLEN"
	CmdStrAppend Command = "JSON.STRAPPEND"
	CmdStrLen    Command = "JSON.STRLEN"
	CmdArrAppend Command = "JSON.ARRAPPEND"
	CmdArrIndex  Command = "JSON.ARRINDEX"
	CmdArrInsert Command = "JSON.ARRINSERT"
	CmdArrLen    Command = "JSON.ARRLEN"
	CmdArrPop    Command = "JSON.ARRPOP"
	CmdArrTrim   Command = "JSON.ARRTRIM"
)

// String returns the wire name of the command
func (c Command) String() string {
	return string(c)
}

// ExistenceModifier constrains whether the target path of JSON.SET must or
// must not already exist before the write succeeds.
type ExistenceModifier string

const (
	// ModeDefault places no constraint on the target path (default).
	// It is never encoded on the wire.
	ModeDefault ExistenceModifier = ""

	// ModeNX requires the target path to not exist yet
	ModeNX ExistenceModifier = "NX"

	// ModeXX requires the target path to already exist
	ModeXX ExistenceModifier = "XX"
)

// ArrPopLastIndex is the sentinel index for JSON.ARRPOP meaning "the last
// element of the array". It is the natural default and is never encoded on
// the wire; every other index, including 0, is encoded explicitly.
const ArrPopLastIndex int64 = -1

// singleOptionalPath resolves the zero-or-one optional path rule: zero
// paths default to the document root, exactly one is taken verbatim, two
// or more is a caller error surfaced before anything is sent.
func singleOptionalPath(op Command, paths []Path) (Path, error) {
	switch len(paths) {
	case 0:
		return RootPath(), nil
	case 1:
		return paths[0], nil
	default:
		return Path{}, &ArgumentError{
			Op:      op.String(),
			Message: "only a single optional path is allowed",
		}
	}
}

// encodeKeyPath builds the common "key path" argument prefix shared by
// most commands. Key always comes first.
func encodeKeyPath(key string, path Path) [][]byte {
	return [][]byte{[]byte(key), []byte(path.String())}
}

// appendSerialized marshals a payload value through the codec and appends
// the JSON text as one argument.
func appendSerialized(codec Codec, args [][]byte, v any) ([][]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(args, []byte(data)), nil
}

// appendSerializedAll marshals each payload value independently and
// appends each as a separate argument, preserving order.
func appendSerializedAll(codec Codec, args [][]byte, values []any) ([][]byte, error) {
	for _, v := range values {
		var err error
		args, err = appendSerialized(codec, args, v)
		if err != nil {
			return nil, err
		}
	}
	return args, nil
}

// appendArrIndexRange applies the JSON.ARRINDEX range encoding rule: if
// stop is non-zero both start and stop are appended; otherwise if start is
// non-zero only start is appended; otherwise neither is.
//
// Known limitation inherited from the wire grammar: a caller cannot
// distinguish "search the whole array" from an explicit start=0, stop=0
// range. The rule is kept exactly as-is; see the ArrIndex documentation.
func appendArrIndexRange(args [][]byte, start, stop int64) [][]byte {
	if stop != 0 {
		args = append(args, formatInt(start), formatInt(stop))
	} else if start != 0 {
		args = append(args, formatInt(start))
	}
	return args
}

// appendArrPopIndex applies the JSON.ARRPOP index encoding rule: the
// ArrPopLastIndex sentinel is omitted, anything else (including 0) is
// encoded explicitly.
func appendArrPopIndex(args [][]byte, index int64) [][]byte {
	if index != ArrPopLastIndex {
		args = append(args, formatInt(index))
	}
	return args
}

// formatInt renders an integer argument in its wire form.
func formatInt(n int64) []byte {
	return []byte(strconv.FormatInt(n, 10))
}

// formatFloat renders a numeric argument with the default numeric-to-string
// conversion (shortest representation that round-trips).
func formatFloat(f float64) []byte {
	return []byte(strconv.FormatFloat(f, 'g', -1, 64))
}
