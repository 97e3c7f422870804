// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

import (
	"errors"
	"fmt"
)

// Errors reported by the Parse method. Each outcome calls for a different
// recovery: ErrNoMemory is fixed by resuming with a larger token slice,
// ErrIncomplete by resuming with more input, and ErrInvalid not at all.
var (
	// ErrNoMemory means the token slice filled up before the input was fully
	// scanned. The parser state remains valid; call Parse again with a slice
	// holding the already-filled prefix plus additional capacity to continue
	// from where the scan stopped.
	ErrNoMemory = errors.New("not enough token slots")

	// ErrInvalid means the input contains a syntax error. Errors wrapping
	// ErrInvalid have concrete type *SyntaxError, which reports the offset of
	// the offending byte.
	ErrInvalid = errors.New("invalid character")

	// ErrIncomplete means the input ended inside an unterminated string,
	// escape sequence, or container. The parser state remains valid; call
	// Parse again after extending the input to continue.
	ErrIncomplete = errors.New("incomplete input")
)

// SyntaxError is the concrete type of syntax errors reported by Parse.
// It wraps ErrInvalid.
type SyntaxError struct {
	Offset  int // byte offset of the offending input byte
	Message string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping. It reports ErrInvalid.
func (e *SyntaxError) Unwrap() error { return ErrInvalid }

func syntaxErrorf(off int, msg string, args ...any) error {
	return &SyntaxError{Offset: off, Message: fmt.Sprintf(msg, args...)}
}
