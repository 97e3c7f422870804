// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsmn implements a minimal resumable tokenizer for JSON text, after
// the jsmn C library.
//
// # Scanning
//
// The tokenizer makes a single pass over a byte slice and fills a
// caller-provided slice of Token records with the type, byte offsets, child
// count, and parent link of every lexical unit it finds. No syntax tree is
// built and the scanning loop does not allocate: all results land in the
// slice the caller supplies.
//
//	p := jsmn.NewParser()
//	tokens := make([]jsmn.Token, 16)
//	n, err := p.Parse(data, tokens)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, tok := range tokens[:n] {
//	   log.Printf("%v at %v", tok.Type, tok.Span())
//	}
//
// Tokens are raw spans of the input. The tokenizer does not decode values:
// numbers are not parsed and string escapes are validated but left in place.
// Use the Text method of a Token to recover its bytes, and Unquote to decode
// the contents of a String token.
//
// # Resumable scans
//
// The state of a scan is the exported fields of the Parser. When Parse
// reports ErrNoMemory the slice filled up mid-scan; the state remains
// coherent, and calling Parse again with the same input and a slice that
// preserves the filled prefix continues exactly where the scan stopped.
// When it reports ErrIncomplete the input ended inside an open string or
// container; extending the input and calling Parse again likewise resumes.
// The Tokenize function packages the grow-and-retry loop for callers that
// just want all the tokens:
//
//	tokens, err := jsmn.Tokenize(data)
//
// # Strict mode
//
// By default the tokenizer is lenient, accepting various fragments that are
// not valid JSON documents, such as bare words or object keys without values.
// The Strict option enables structural validation of primitives, key/colon
// pairing, and comma and colon placement:
//
//	p := jsmn.NewParser(jsmn.Strict())
package jsmn
