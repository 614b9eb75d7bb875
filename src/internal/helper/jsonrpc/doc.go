// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides the [JSON-RPC 2.0] envelope types used by the GDS MCP server.
//
// It covers three concerns:
//   - decoding: request bodies are normalized to lowercase keys with a default
//     "jsonrpc" version before they are turned into a [Request]
//   - identifiers: [ParseID] accepts only null, string and number ids
//   - building: [NewResult] and [NewError] are the only way responses are made,
//     and every [Error] comes from the fixed code table in this package
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
