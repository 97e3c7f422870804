// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

// Type is the lexical type of a token in JSON source text.
type Type byte

// Constants defining the valid Type values.
const (
	Undefined Type = iota // no token, the zero value
	Object                // object: "{" ... "}"
	Array                 // array: "[" ... "]"
	String                // quoted string
	Primitive             // number, true, false, null
)

var typeStr = [...]string{
	Undefined: "undefined",
	Object:    "object",
	Array:     "array",
	String:    "string",
	Primitive: "primitive",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Undefined]
	}
	return typeStr[v]
}

// A Token describes one lexical unit of JSON source text: its type, its byte
// offsets in the input, the number of its immediate children, and the index
// of the token it belongs to.
//
// Offsets are half-open, [Start, End), except that an object or array token
// spans both of its delimiters, and a string token spans the text between its
// quotation marks exclusive of the marks themselves.
//
// Size counts immediate children only: member keys for an object, elements
// for an array. A string used as an object key has Size 1, counting the value
// that follows it. Strings used as values and primitives have Size 0.
type Token struct {
	Type   Type
	Start  int
	End    int
	Size   int
	Parent int // index of the enclosing token, or -1 at top level
}

// Span returns the byte offset span of t in its input.
func (t Token) Span() Span { return Span{Pos: t.Start, End: t.End} }

// Text returns the raw undecoded bytes of t in data, which must be the same
// input the token was scanned from. String contents are not unescaped; use
// Unquote for that.
func (t Token) Text(data []byte) []byte { return data[t.Start:t.End] }
