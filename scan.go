// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

// Parse scans JSON text from data and fills tokens with a record for each
// lexical unit found, allocating records strictly left to right. It returns
// the total number of tokens committed so far, including tokens committed by
// earlier calls on the same Parser.
//
// Parse never allocates and never writes outside the supplied slice. When the
// slice fills up before the input is exhausted, Parse returns ErrNoMemory;
// the caller may retry with a slice that preserves the filled prefix and adds
// capacity, and the scan resumes at p.Pos without rescanning committed
// tokens. Truncated input is reported as ErrIncomplete, and a syntax error as
// a *SyntaxError wrapping ErrInvalid.
//
// If len(tokens) == 0, Parse runs in count-only mode: the input is validated
// and the number of tokens a full scan would produce is returned, but no
// records are written. Count-only mode cannot detect unterminated containers,
// and strict-mode checks that depend on committed records are skipped.
func (p *Parser) Parse(data []byte, tokens []Token) (int, error) {
	count := p.TokNext
	counting := len(tokens) == 0

	for ; p.Pos < len(data); p.Pos++ {
		switch c := data[p.Pos]; c {
		case '{', '[':
			count++
			if counting {
				break
			}
			t := p.alloc(tokens)
			if t == nil {
				return p.TokNext, ErrNoMemory
			}
			if p.TokSuper != -1 {
				super := &tokens[p.TokSuper]
				if p.strict && super.Type == Object {
					// An object or array cannot be an object key.
					return p.TokNext, syntaxErrorf(p.Pos, "%q cannot start an object key", c)
				}
				super.Size++
			}
			if c == '{' {
				t.Type = Object
			} else {
				t.Type = Array
			}
			t.Start = p.Pos
			p.TokSuper = p.TokNext - 1

		case '}', ']':
			if counting {
				break
			}
			want := Object
			if c == ']' {
				want = Array
			}
			if p.TokNext < 1 {
				return p.TokNext, syntaxErrorf(p.Pos, "unexpected %q", c)
			}

			// Walk up the parent chain from the most recent token to the
			// nearest still-open token, which must match the delimiter.
			i := p.TokNext - 1
			for {
				t := &tokens[i]
				if t.End == -1 {
					if t.Type != want {
						return p.TokNext, syntaxErrorf(p.Pos, "%q closes an open %v", c, t.Type)
					}
					if p.strict && want == Object && danglingKey(tokens, p.TokNext, i) {
						return p.TokNext, syntaxErrorf(p.Pos, "object key without a value")
					}
					t.End = p.Pos + 1
					p.TokSuper = t.Parent
					break
				}
				if t.Parent == -1 {
					if t.Type != want || p.TokSuper == -1 {
						return p.TokNext, syntaxErrorf(p.Pos, "unexpected %q", c)
					}
					break
				}
				i = t.Parent
			}

		case '"':
			if p.strict && !counting && p.TokSuper != -1 &&
				tokens[p.TokSuper].Type == Object && danglingKey(tokens, p.TokNext, p.TokSuper) {
				return p.TokNext, syntaxErrorf(p.Pos, "object key not followed by a colon")
			}
			if err := p.scanString(data, tokens); err != nil {
				return p.TokNext, err
			}
			count++
			if p.TokSuper != -1 && !counting {
				tokens[p.TokSuper].Size++
			}

		case '\t', '\r', '\n', ' ':
			// skip whitespace

		case ':':
			if p.strict && !counting {
				if p.TokNext == 0 || p.TokSuper == -1 ||
					tokens[p.TokSuper].Type != Object ||
					tokens[p.TokNext-1].Type != String ||
					tokens[p.TokNext-1].Size != 0 ||
					tokens[p.TokNext-1].Parent != p.TokSuper {
					return p.TokNext, syntaxErrorf(p.Pos, `":" is only valid after an object key`)
				}
			}
			p.TokSuper = p.TokNext - 1

		case ',':
			if p.strict && !counting {
				if p.TokSuper == -1 {
					return p.TokNext, syntaxErrorf(p.Pos, `"," outside any object or array`)
				}
				if tokens[p.TokSuper].Type == Object && danglingKey(tokens, p.TokNext, p.TokSuper) {
					return p.TokNext, syntaxErrorf(p.Pos, "object key without a value")
				}
			}
			if !counting && p.TokSuper != -1 &&
				tokens[p.TokSuper].Type != Array && tokens[p.TokSuper].Type != Object {
				// The value of an object member is complete; control returns
				// from the member key to its enclosing object.
				p.TokSuper = tokens[p.TokSuper].Parent
			}

		default:
			if p.strict {
				if !isPrimitiveStart(c) {
					return p.TokNext, syntaxErrorf(p.Pos, "unexpected character %q", c)
				}
				if !counting && p.TokSuper != -1 {
					super := &tokens[p.TokSuper]
					if super.Type == Object || (super.Type == String && super.Size != 0) {
						return p.TokNext, syntaxErrorf(p.Pos, "primitive is not valid here")
					}
				}
			}
			if err := p.scanPrimitive(data, tokens); err != nil {
				return p.TokNext, err
			}
			count++
			if p.TokSuper != -1 && !counting {
				tokens[p.TokSuper].Size++
			}
		}
	}

	if !counting {
		for i := p.TokNext - 1; i >= 0; i-- {
			if tokens[i].End == -1 {
				return p.TokNext, ErrIncomplete // unmatched open object or array
			}
		}
	}
	return count, nil
}

// scanString consumes a quoted string starting at the opening quotation mark
// and commits a String token spanning its contents. Escape sequences are
// validated but not decoded. On failure the position is restored so a resumed
// call rescans the string from its opening quote.
func (p *Parser) scanString(data []byte, tokens []Token) error {
	start := p.Pos
	p.Pos++ // skip the opening quote
	for ; p.Pos < len(data); p.Pos++ {
		switch data[p.Pos] {
		case '"':
			if len(tokens) == 0 {
				return nil
			}
			t := p.alloc(tokens)
			if t == nil {
				p.Pos = start
				return ErrNoMemory
			}
			t.Type = String
			t.Start = start + 1
			t.End = p.Pos
			return nil

		case '\\':
			if p.Pos+1 >= len(data) {
				break // truncated escape, reported as incomplete below
			}
			p.Pos++
			switch data[p.Pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
				// valid single-character escape
			case 'u':
				p.Pos++
				for i := 0; i < 4 && p.Pos < len(data); i++ {
					if !isHexDigit(data[p.Pos]) {
						off := p.Pos
						p.Pos = start
						return syntaxErrorf(off, "invalid hex digit %q in escape", data[off])
					}
					p.Pos++
				}
				p.Pos--
			default:
				off := p.Pos
				p.Pos = start
				return syntaxErrorf(off, "invalid %q after escape", data[off])
			}
		}
	}
	p.Pos = start
	return ErrIncomplete
}

// scanPrimitive consumes an unquoted literal and commits a Primitive token.
// The literal ends at whitespace, a structural delimiter, or the end of
// input. In lenient mode the end of input also closes the literal; strict
// mode reports ErrIncomplete there instead.
func (p *Parser) scanPrimitive(data []byte, tokens []Token) error {
	start := p.Pos
scan:
	for ; p.Pos < len(data); p.Pos++ {
		switch c := data[p.Pos]; c {
		case '\t', '\r', '\n', ' ', ',', ']', '}':
			break scan
		case ':':
			if !p.strict {
				break scan
			}
		}
		if data[p.Pos] < 32 || data[p.Pos] >= 127 {
			off := p.Pos
			p.Pos = start
			return syntaxErrorf(off, "invalid character %q in primitive", data[off])
		}
	}
	if p.Pos == len(data) && p.strict {
		// In strict mode a primitive must be terminated within the input.
		p.Pos = start
		return ErrIncomplete
	}

	if len(tokens) == 0 {
		p.Pos--
		return nil
	}
	t := p.alloc(tokens)
	if t == nil {
		p.Pos = start
		return ErrNoMemory
	}
	t.Type = Primitive
	t.Start = start
	t.End = p.Pos
	p.Pos-- // the terminator belongs to the caller
	return nil
}

// alloc claims the next free token slot, or returns nil if the slice is full.
// The slot is initialized open (End == -1) with its parent link set to the
// current superior token.
func (p *Parser) alloc(tokens []Token) *Token {
	if p.TokNext >= len(tokens) {
		return nil
	}
	t := &tokens[p.TokNext]
	p.TokNext++
	*t = Token{Start: -1, End: -1, Parent: p.TokSuper}
	return t
}

// danglingKey reports whether the most recent token is a key of the given
// container that has not yet received a value.
func danglingKey(tokens []Token, toknext, container int) bool {
	last := tokens[toknext-1]
	return last.Type == String && last.Size == 0 && last.Parent == container
}

func isPrimitiveStart(c byte) bool {
	return c == '-' || ('0' <= c && c <= '9') || c == 't' || c == 'f' || c == 'n'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
