// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

// Req collects the optional parameters of a single operation.
//
// Optional parameters are applied via functional request modifiers;
// required parameters are passed directly to the operation methods.
//
// Example:
//
//	// Delete a sub-path instead of the whole document
//	n, err := client.Del("user:1", rejson.AtPath(rejson.NewPath(".age")))
//
//	// Set only if the key does not exist yet
//	err := client.Set("user:1", doc, rejson.Mode(rejson.ModeNX))
type Req struct {
	// paths holds the paths supplied via AtPath, in order
	paths []Path

	// mode is the existence constraint for JSON.SET
	mode ExistenceModifier
}

// newReq builds a Req from request modifiers.
func newReq(mods []func(*Req)) *Req {
	req := &Req{mode: ModeDefault}
	for _, mod := range mods {
		mod(req)
	}
	return req
}

// AtPath returns a request modifier adding a document path to the
// operation.
//
// Operations accepting at most one path (Del, Set, Type, ObjKeys, ObjLen,
// StrAppend, StrLen, ArrLen) default to the document root when no AtPath
// modifier is given and fail with an *ArgumentError when more than one is.
// Get accepts any number of AtPath modifiers, each appended verbatim in
// order.
//
// Example:
//
//	res, err := client.Get("user:1",
//	    rejson.AtPath(rejson.NewPath(".name")),
//	    rejson.AtPath(rejson.NewPath(".age")))
func AtPath(path Path) func(*Req) {
	return func(req *Req) {
		req.paths = append(req.paths, path)
	}
}

// Mode returns a request modifier constraining whether the target path of
// Set must or must not already exist.
//
// ModeDefault (no constraint) adds no wire argument; ModeNX and ModeXX are
// encoded as the trailing argument of JSON.SET. The modifier is ignored by
// every operation other than Set.
//
// Example:
//
//	// Create-only write: fails if the key already holds a value
//	err := client.Set("user:1", doc, rejson.Mode(rejson.ModeNX))
func Mode(mode ExistenceModifier) func(*Req) {
	return func(req *Req) {
		req.mode = mode
	}
}
