// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// PositionAt reports the line and column of the byte at offset off in data.
// Offsets at or past the end of data report the position just after the last
// byte.
func PositionAt(data []byte, off int) LineCol {
	if off > len(data) {
		off = len(data)
	}
	line, lineStart := 1, 0
	for i := 0; i < off; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return LineCol{Line: line, Column: off - lineStart}
}
