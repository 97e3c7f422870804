// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsmn_test

import (
	"testing"

	"github.com/creachadair/jsmn"
)

func TestPositionAt(t *testing.T) {
	const input = "{\n \"a\": 1,\n \"b\": [2]\n}"
	tests := []struct {
		off  int
		want string
	}{
		{0, "1:0"},   // the open brace
		{3, "2:1"},   // the quote of "a"
		{8, "2:6"},   // the value 1
		{12, "3:1"},  // the quote of "b"
		{21, "4:0"},  // the close brace
		{22, "4:1"},  // one past the last byte
		{100, "4:1"}, // clamped to the end of input
	}
	for _, test := range tests {
		if got := jsmn.PositionAt([]byte(input), test.off).String(); got != test.want {
			t.Errorf("PositionAt(%d): got %q, want %q", test.off, got, test.want)
		}
	}
}
