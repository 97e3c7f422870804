// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

import "errors"

// A Parser is the persistent state of a scan over one logical input. The
// exported fields record exactly where the scan stopped; together with the
// input and the token slice they fully determine the rest of the scan, so a
// Parser may be saved, inspected, and restored across arbitrary boundaries.
//
// The zero value is not ready for use: TokSuper must begin at -1. Use
// NewParser, or call Reset before the first Parse.
type Parser struct {
	Pos      int // byte offset of the next unconsumed input byte
	TokNext  int // index of the next free token slot
	TokSuper int // index of the open superior token, or -1 at top level

	strict bool
}

// An Option configures a Parser.
type Option func(*Parser)

// Strict enables strict structural validation: primitives are limited to
// numbers, booleans, and null; object keys must be followed by a colon;
// commas and colons are rejected outside their proper positions; and a
// primitive truncated by the end of input reports ErrIncomplete instead of
// being closed where the input ends.
func Strict() Option { return func(p *Parser) { p.strict = true } }

// NewParser constructs a ready-to-use Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{TokSuper: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset restores p to its initial state so it can scan a new input.
// Options are retained.
func (p *Parser) Reset() { p.Pos, p.TokNext, p.TokSuper = 0, 0, -1 }

// Tokenize scans data to completion and returns its tokens, growing the token
// slice as needed. It is a convenience wrapper around the fixed-capacity
// Parse contract: on ErrNoMemory the slice is doubled, preserving the
// already-filled prefix, and the scan resumes where it stopped.
func Tokenize(data []byte, opts ...Option) ([]Token, error) {
	p := NewParser(opts...)
	tokens := make([]Token, 64)
	for {
		n, err := p.Parse(data, tokens)
		if errors.Is(err, ErrNoMemory) {
			grown := make([]Token, 2*len(tokens))
			copy(grown, tokens)
			tokens = grown
			continue
		} else if err != nil {
			return nil, err
		}
		return tokens[:n], nil
	}
}

// MustTokenize is as Tokenize, but panics if the input does not scan. It is
// intended for static inputs known to be well-formed.
func MustTokenize(data []byte, opts ...Option) []Token {
	tokens, err := Tokenize(data, opts...)
	if err != nil {
		panic("jsmn: " + err.Error())
	}
	return tokens
}
