// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn

import (
	"github.com/creachadair/jsmn/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as the contents of a JSON string value. The result is
// escaped but not surrounded by quotation marks, matching the span reported
// for a String token.
func Quote(src string) []byte { return escape.Quote(mem.S(src)) }

// Unquote decodes the contents of a JSON string value, as reported by the
// Text method of a String token: escape sequences are replaced with their
// unescaped equivalents. The surrounding quotation marks must already be
// removed. Unquote reports an error for an invalid or incomplete escape
// sequence; inputs accepted by Parse always decode without error.
func Unquote(src []byte) ([]byte, error) { return escape.Unquote(mem.B(src)) }
