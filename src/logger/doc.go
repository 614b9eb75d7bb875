// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging backends of the GDS MCP server.
//
// [New] builds the structured [zap] logger used by the HTTP transport and the
// dispatcher. [Logger] is the small Printf-style interface shared by the
// command-line layer; [CLILogger] writes plain lines for humans and
// [JSONLogger] adapts a zap logger to the same interface.
//
// [zap]: https://github.com/uber-go/zap
package logger
