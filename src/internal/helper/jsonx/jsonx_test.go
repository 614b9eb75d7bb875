// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonx

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	data, err := Marshal(map[string]string{"tsx": `<Box bg="bg.default">&</Box>`})
	require.NoError(t, err)
	assert.Equal(t, `{"tsx":"<Box bg=\"bg.default\">&</Box>"}`, string(data))
}

func TestMarshalReplacesInvalidUTF8(t *testing.T) {
	data, err := Marshal(map[string]string{"message": "Method not supported: bad\xff\xfe"})
	require.NoError(t, err)
	assert.True(t, utf8.Valid(data), "%q", data)
	assert.Contains(t, string(data), "Method not supported: bad")
	assert.NotContains(t, string(data), "\xff")
}

func TestMarshalSortsMapKeys(t *testing.T) {
	data, err := Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(data))
}

func TestMarshalIndent(t *testing.T) {
	type file struct {
		Path string `json:"path"`
	}
	data, err := MarshalIndent(struct {
		Files []file `json:"files"`
	}{Files: []file{{Path: "src/components/X.tsx"}}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"files\": [\n    {\n      \"path\": \"src/components/X.tsx\"\n    }\n  ]\n}", string(data))
}

func TestUnmarshalKeepsIntegers(t *testing.T) {
	var v map[string]any
	require.NoError(t, Unmarshal([]byte(`{"id":7}`), &v))
	assert.Equal(t, int64(7), v["id"])
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"jsonrpc":"2.0"}`)))
	assert.False(t, Valid([]byte(`{"jsonrpc":`)))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, map[string]any{}))
	assert.Equal(t, "{}\n", buf.String())
}
