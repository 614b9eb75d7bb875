// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver implements the GDS [MCP] server: a JSON-RPC endpoint over
// HTTP that hands Chakra UI v3 naming rules, a LoginCard snippet and generated
// component scaffolds to MCP clients.
//
// The [Dispatcher] is built once by [ServerBuilder] from immutable tool and
// resource registries and then answers initialize, tools/list, tools/call,
// resources/list, resources/read and ping. [NewHTTPHandler] exposes it on
// POST /mcp together with health checks and GET convenience routes, and
// [CLIFramework] wraps everything in a Cobra command.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
