// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jsmntok tokenizes JSON text and prints one line per token.
//
// Usage:
//
//	jsmntok [options] [input-file]
//
// With no input file, input is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jsmn"
	"github.com/tailscale/hujson"
)

func main() { os.Exit(run(os.Stdout, os.Stderr, os.Args[1:])) }

func run(w, ew io.Writer, args []string) int {
	fs := flag.NewFlagSet("jsmntok", flag.ContinueOnError)
	fs.SetOutput(ew)
	var (
		strictMode = fs.Bool("strict", false, "Enable strict structural validation")
		hujsonMode = fs.Bool("hujson", false, "Standardize comments and trailing commas before tokenizing")
		countOnly  = fs.Bool("count", false, "Report the number of tokens without printing them")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	data, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(ew, "Error: %v\n", err)
		return 1
	}
	if *hujsonMode {
		std, err := hujson.Standardize(data)
		if err != nil {
			fmt.Fprintf(ew, "Error: standardize input: %v\n", err)
			return 1
		}
		data = std
	}

	var opts []jsmn.Option
	if *strictMode {
		opts = append(opts, jsmn.Strict())
	}

	if *countOnly {
		n, err := jsmn.NewParser(opts...).Parse(data, nil)
		if err != nil {
			reportError(ew, data, err)
			return 1
		}
		fmt.Fprintln(w, n)
		return 0
	}

	tokens, err := jsmn.Tokenize(data, opts...)
	if err != nil {
		reportError(ew, data, err)
		return 1
	}
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d %-9s %-8v size=%d parent=%d%s\n",
			i, tok.Type, jsmn.PositionAt(data, tok.Start), tok.Size, tok.Parent, tokenText(data, tok))
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// tokenText renders the text of a scalar token for display. Containers span
// their whole subtree, so only their offsets are shown.
func tokenText(data []byte, tok jsmn.Token) string {
	switch tok.Type {
	case jsmn.String:
		dec, err := jsmn.Unquote(tok.Text(data))
		if err == nil {
			return fmt.Sprintf(" %q", dec)
		}
		return fmt.Sprintf(" %q", tok.Text(data))
	case jsmn.Primitive:
		return " " + string(tok.Text(data))
	default:
		return fmt.Sprintf(" [%d:%d)", tok.Start, tok.End)
	}
}

func reportError(ew io.Writer, data []byte, err error) {
	var serr *jsmn.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintf(ew, "Error: %v: %s\n", jsmn.PositionAt(data, serr.Offset), serr.Message)
		return
	}
	fmt.Fprintf(ew, "Error: %v\n", err)
}
