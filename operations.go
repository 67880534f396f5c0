// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import (
	"fmt"
	"strconv"
)

// Del deletes the value at a path.
//
// The path defaults to the document root; deleting the root removes the
// key itself. Returns the number of paths deleted (0 or 1), so deleting a
// key or path that does not exist returns 0 without error.
//
// Example:
//
//	n, err := client.Del("user:1", rejson.AtPath(rejson.NewPath(".age")))
func (c *Client) Del(key string, mods ...func(*Req)) (int64, error) {
	req := newReq(mods)
	path, err := singleOptionalPath(CmdDel, req.paths)
	if err != nil {
		return 0, err
	}

	if err := c.send(CmdDel, encodeKeyPath(key, path)); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// Get fetches the value at one or more paths.
//
// With no AtPath modifier the whole document is returned. With one or more
// modifiers each path is appended verbatim, in order, and the server
// returns a single JSON object keyed by path.
//
// The reply is deserialized through the client's codec into GetRes.Value
// and kept verbatim in GetRes.Raw for gjson queries.
//
// Example:
//
//	res, err := client.Get("user:1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name := res.GetValue("name").String()
func (c *Client) Get(key string, mods ...func(*Req)) (GetRes, error) {
	req := newReq(mods)

	args := make([][]byte, 0, len(req.paths)+1)
	args = append(args, []byte(key))
	for _, p := range req.paths {
		args = append(args, []byte(p.String()))
	}

	if err := c.send(CmdGet, args); err != nil {
		return GetRes{}, err
	}
	rep, err := c.conn.ReadBulkReply()
	if err != nil {
		return GetRes{}, err
	}
	if err := assertBulkNotError(CmdGet, rep); err != nil {
		return GetRes{}, err
	}
	if rep == nil {
		return GetRes{}, nil
	}

	var value any
	if err := c.codec.Unmarshal(*rep, &value); err != nil {
		return GetRes{}, fmt.Errorf("rejson: %s: decoding reply: %w", CmdGet, err)
	}

	c.logger.Debug("get reply",
		"key", key,
		"bytes", len(*rep))

	return GetRes{Raw: *rep, Value: value}, nil
}

// Set stores a value at a path.
//
// The value is serialized through the client's codec. The path defaults to
// the document root. An existence constraint can be applied with the Mode
// modifier: ModeNX fails if the path already holds a value, ModeXX fails
// if it does not; both failures surface as a *ProtocolError. The default
// mode adds no wire argument.
//
// Example:
//
//	err := client.Set("user:1", map[string]any{"name": "Ada"},
//	    rejson.Mode(rejson.ModeNX))
func (c *Client) Set(key string, value any, mods ...func(*Req)) error {
	req := newReq(mods)
	path, err := singleOptionalPath(CmdSet, req.paths)
	if err != nil {
		return err
	}

	args, err := appendSerialized(c.codec, encodeKeyPath(key, path), value)
	if err != nil {
		return err
	}
	if req.mode != ModeDefault {
		args = append(args, []byte(req.mode))
	}

	if err := c.send(CmdSet, args); err != nil {
		return err
	}
	status, err := c.conn.ReadStatusReply()
	if err != nil {
		return err
	}
	return assertReplyOK(CmdSet, status)
}

// Type reports the JSON type of the value at a path.
//
// The path defaults to the document root. A missing key yields TypeNull.
// A reply naming a type outside the known set fails with an
// *UnknownTypeError.
//
// Example:
//
//	t, err := client.Type("user:1", rejson.AtPath(rejson.NewPath(".tags")))
//	// t == rejson.TypeArray
func (c *Client) Type(key string, mods ...func(*Req)) (JSONType, error) {
	req := newReq(mods)
	path, err := singleOptionalPath(CmdType, req.paths)
	if err != nil {
		return TypeNull, err
	}

	if err := c.send(CmdType, encodeKeyPath(key, path)); err != nil {
		return TypeNull, err
	}
	rep, err := c.conn.ReadBulkReply()
	if err != nil {
		return TypeNull, err
	}
	if err := assertBulkNotError(CmdType, rep); err != nil {
		return TypeNull, err
	}
	if rep == nil {
		return TypeNull, nil
	}
	return jsonTypeFromName(CmdType, *rep)
}

// MGet fetches the value at the same path from one or more keys.
//
// Exactly one path applies to all keys and is encoded as the trailing
// argument. The result preserves key order; a nil element means the key
// or path was absent. Only position 0 of the reply is inspected for a
// server error marker, since a server error manifests as a single-element
// reply.
//
// Example:
//
//	vals, err := client.MGet(rejson.NewPath(".name"), "user:1", "user:2")
func (c *Client) MGet(path Path, keys ...string) ([]*string, error) {
	if len(keys) == 0 {
		return nil, &ArgumentError{Op: CmdMGet.String(), Message: "at least one key is required"}
	}

	args := make([][]byte, 0, len(keys)+1)
	for _, k := range keys {
		args = append(args, []byte(k))
	}
	args = append(args, []byte(path.String()))

	if err := c.send(CmdMGet, args); err != nil {
		return nil, err
	}
	rep, err := c.conn.ReadMultiBulkReply()
	if err != nil {
		return nil, err
	}
	if err := assertMultiBulkNotError(CmdMGet, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// NumIncrBy increments the number at a path by the given amount and
// returns the new value.
//
// The reply must be an integer; a fractional result is a decode error.
func (c *Client) NumIncrBy(key string, path Path, increment float64) (int64, error) {
	args := append(encodeKeyPath(key, path), formatFloat(increment))

	if err := c.send(CmdNumIncrBy, args); err != nil {
		return 0, err
	}
	return c.readIntegerBulk(CmdNumIncrBy)
}

// NumMultBy multiplies the number at a path by the given factor and
// returns the new value.
//
// The reply must be an integer; a fractional result is a decode error.
func (c *Client) NumMultBy(key string, path Path, multiplier float64) (int64, error) {
	args := append(encodeKeyPath(key, path), formatFloat(multiplier))

	if err := c.send(CmdNumMultBy, args); err != nil {
		return 0, err
	}
	return c.readIntegerBulk(CmdNumMultBy)
}

// ObjKeys lists the keys of the object at a path, defaulting to the
// document root.
func (c *Client) ObjKeys(key string, mods ...func(*Req)) ([]string, error) {
	req := newReq(mods)
	path, err := singleOptionalPath(CmdObjKeys, req.paths)
	if err != nil {
		return nil, err
	}

	if err := c.send(CmdObjKeys, encodeKeyPath(key, path)); err != nil {
		return nil, err
	}
	rep, err := c.conn.ReadMultiBulkReply()
	if err != nil {
		return nil, err
	}
	if err := assertMultiBulkNotError(CmdObjKeys, rep); err != nil {
		return nil, err
	}

	keys := make([]string, len(rep))
	for i, el := range rep {
		if el != nil {
			keys[i] = *el
		}
	}
	return keys, nil
}

// ObjLen returns the number of keys in the object at a path, defaulting to
// the document root.
func (c *Client) ObjLen(key string, mods ...func(*Req)) (int64, error) {
	return c.keyPathIntegerOp(CmdObjLen, key, mods)
}

// StrAppend appends a value to the string at a path and returns the new
// string length. The value is serialized through the client's codec, so a
// Go string payload is sent as a JSON string.
func (c *Client) StrAppend(key string, value any, mods ...func(*Req)) (int64, error) {
	req := newReq(mods)
	path, err := singleOptionalPath(CmdStrAppend, req.paths)
	if err != nil {
		return 0, err
	}

	args, err := appendSerialized(c.codec, encodeKeyPath(key, path), value)
	if err != nil {
		return 0, err
	}

	if err := c.send(CmdStrAppend, args); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// StrLen returns the length of the string at a path, defaulting to the
// document root.
func (c *Client) StrLen(key string, mods ...func(*Req)) (int64, error) {
	return c.keyPathIntegerOp(CmdStrLen, key, mods)
}

// ArrAppend appends one or more values to the array at a path and returns
// the new array length. Each value is serialized independently and sent as
// its own argument, in the order given.
func (c *Client) ArrAppend(key string, path Path, values ...any) (int64, error) {
	if len(values) == 0 {
		return 0, &ArgumentError{Op: CmdArrAppend.String(), Message: "at least one value is required"}
	}

	args, err := appendSerializedAll(c.codec, encodeKeyPath(key, path), values)
	if err != nil {
		return 0, err
	}

	if err := c.send(CmdArrAppend, args); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// ArrIndex returns the position of the first occurrence of a scalar in
// the array at a path, or -1 if it is not present.
//
// The search range follows the wire grammar's encoding rule: if stop is
// non-zero both bounds are sent; otherwise if start is non-zero only start
// is sent; otherwise neither is. A consequence is that an explicit
// start=0, stop=0 range is indistinguishable from "search the whole
// array". This ambiguity is inherent to the command grammar and is
// preserved rather than worked around.
//
// Example:
//
//	// Search the whole array
//	pos, err := client.ArrIndex("user:1", rejson.NewPath(".tags"), "math", 0, 0)
//
//	// Search from position 2 to the end
//	pos, err = client.ArrIndex("user:1", rejson.NewPath(".tags"), "math", 2, 0)
func (c *Client) ArrIndex(key string, path Path, scalar any, start, stop int64) (int64, error) {
	args, err := appendSerialized(c.codec, encodeKeyPath(key, path), scalar)
	if err != nil {
		return 0, err
	}
	args = appendArrIndexRange(args, start, stop)

	if err := c.send(CmdArrIndex, args); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// ArrInsert inserts one or more values into the array at a path, before
// the given index, and returns the new array length.
func (c *Client) ArrInsert(key string, path Path, index int64, values ...any) (int64, error) {
	if len(values) == 0 {
		return 0, &ArgumentError{Op: CmdArrInsert.String(), Message: "at least one value is required"}
	}

	args := append(encodeKeyPath(key, path), formatInt(index))
	args, err := appendSerializedAll(c.codec, args, values)
	if err != nil {
		return 0, err
	}

	if err := c.send(CmdArrInsert, args); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// ArrLen returns the length of the array at a path, defaulting to the
// document root.
func (c *Client) ArrLen(key string, mods ...func(*Req)) (int64, error) {
	return c.keyPathIntegerOp(CmdArrLen, key, mods)
}

// ArrPop removes and returns the element at the given index of the array
// at a path.
//
// ArrPopLastIndex (-1) pops the last element and, being the default, is
// never encoded; any other index, including 0, is sent explicitly. The
// popped element is returned as raw JSON text; nil means the array was
// empty.
//
// Example:
//
//	el, err := client.ArrPop("user:1", rejson.NewPath(".tags"), rejson.ArrPopLastIndex)
//	if el != nil {
//	    fmt.Println(*el)
//	}
func (c *Client) ArrPop(key string, path Path, index int64) (*string, error) {
	args := appendArrPopIndex(encodeKeyPath(key, path), index)

	if err := c.send(CmdArrPop, args); err != nil {
		return nil, err
	}
	rep, err := c.conn.ReadBulkReply()
	if err != nil {
		return nil, err
	}
	if err := assertBulkNotError(CmdArrPop, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// ArrTrim trims the array at a path to the inclusive range [start, stop]
// and returns the new array length. Both bounds are always sent.
//
// A start beyond the array length, or greater than stop, empties the
// array; out-of-range bounds are clamped by the server.
func (c *Client) ArrTrim(key string, path Path, start, stop int64) (int64, error) {
	args := append(encodeKeyPath(key, path), formatInt(start), formatInt(stop))

	if err := c.send(CmdArrTrim, args); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// keyPathIntegerOp runs the shared grammar of ObjLen, StrLen and ArrLen:
// key plus a single optional path, integer reply.
func (c *Client) keyPathIntegerOp(op Command, key string, mods []func(*Req)) (int64, error) {
	req := newReq(mods)
	path, err := singleOptionalPath(op, req.paths)
	if err != nil {
		return 0, err
	}

	if err := c.send(op, encodeKeyPath(key, path)); err != nil {
		return 0, err
	}
	return c.conn.ReadIntegerReply()
}

// readIntegerBulk reads a bulk reply that carries a base-10 integer
// (JSON.NUMINCRBY, JSON.NUMMULTBY), validating the error marker first.
func (c *Client) readIntegerBulk(op Command) (int64, error) {
	rep, err := c.conn.ReadBulkReply()
	if err != nil {
		return 0, err
	}
	if err := assertBulkNotError(op, rep); err != nil {
		return 0, err
	}
	if rep == nil {
		return 0, fmt.Errorf("rejson: %s: unexpected nil reply", op)
	}

	n, err := strconv.ParseInt(*rep, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("rejson: %s: parsing reply %q: %w", op, *rep, err)
	}
	return n, nil
}
