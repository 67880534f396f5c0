// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

// Path locates a position inside a stored JSON document.
//
// A Path is an opaque string handed to the server verbatim; this library
// never parses it. The canonical root path "." addresses the whole
// document and is the default wherever a path is optional.
type Path struct {
	str string
}

// rootPathString is the canonical wire form for "the whole document".
const rootPathString = "."

// RootPath returns the path addressing the whole document.
func RootPath() Path {
	return Path{str: rootPathString}
}

// NewPath returns a path for the given sub-location string, for example
// ".name" or ".friends[0].age". The string is sent to the server as-is.
func NewPath(path string) Path {
	return Path{str: path}
}

// String returns the canonical wire form of the path.
func (p Path) String() string {
	return p.str
}

// IsRoot reports whether the path addresses the whole document.
func (p Path) IsRoot() bool {
	return p.str == rootPathString
}
