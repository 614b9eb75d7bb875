// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonx is the single JSON codec used across the server, backed by [sonic].
//
// HTML characters are never escaped so generated TSX survives a JSON round
// trip byte for byte, and map keys are sorted so responses are deterministic.
// Strings holding invalid UTF-8 are encoded with U+FFFD in place of the bad bytes.
//
// [sonic]: https://github.com/bytedance/sonic
package jsonx

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML:     false,
	SortMapKeys:    true,
	UseInt64:       true,
	ValidateString: true,
}.Froze()

// Marshal returns the compact JSON encoding of v.
func Marshal(v any) ([]byte, error) { return api.Marshal(v) }

// MarshalIndent returns the JSON encoding of v indented with two spaces per level.
func MarshalIndent(v any) ([]byte, error) { return api.MarshalIndent(v, "", "  ") }

// Unmarshal parses data into the value pointed to by v.
func Unmarshal(data []byte, v any) error { return api.Unmarshal(data, v) }

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool { return api.Valid(data) }

// Encode writes the compact encoding of v followed by a newline to w.
func Encode(w io.Writer, v any) error {
	data, err := api.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
