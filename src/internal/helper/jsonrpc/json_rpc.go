// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"strings"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/mark3labs/mcp-go/mcp"
)

// DecodeRequest parses a raw request body into a [Request].
//
// Invalid JSON yields a parse error; a body that is valid JSON but not an
// object yields an invalid-request error. Both are returned as *[Error] so the
// caller can send them back unchanged. A missing or non-string method decodes
// to the empty string and non-object params decode to nil; dispatch decides
// what to do with them.
func DecodeRequest(data []byte) (Request, error) {
	var raw any
	if err := jsonx.Unmarshal(data, &raw); err != nil {
		return Request{}, ParseError()
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return Request{}, InvalidRequest("body must be a JSON object")
	}

	fixed := Map(obj)
	req := Request{ID: fixed["id"]}
	req.JSONRPC, _ = fixed["jsonrpc"].(string)
	req.Method, _ = fixed["method"].(string)
	req.Params, _ = fixed["params"].(map[string]any)
	return req, nil
}

// Map converts a decoded JSON-RPC map to canonical lowercase key form.
//
// Only top-level keys are folded; params keep their original casing.
//   - "id": an empty object becomes null, whole-number floats become int64
//   - "jsonrpc": defaults to "2.0" when absent
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any, len(temp)+1)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case "id":
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed["id"] = nil
			} else {
				fixed["id"] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed["jsonrpc"]; !ok {
		fixed["jsonrpc"] = mcp.JSONRPC_VERSION
	}

	return fixed
}

// normalizeIDValue converts whole number float64 values to int64 so "1.0" echoes as 1.
func normalizeIDValue(v any) any {
	if f, ok := v.(float64); ok {
		if f == float64(int64(f)) {
			return int64(f)
		}
	}
	return v
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
func UnmarshalFromMap(src any, dest any) error {
	data, err := jsonx.Marshal(src)
	if err != nil {
		return err
	}
	return jsonx.Unmarshal(data, dest)
}
