// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-friendly helpers used by the command-line layer.
//
// The only helper today is [ExecutableName], which derives a clean binary name
// from os.Args[0] so that cobra usage strings match whatever the operator
// actually typed, regardless of the platform the binary was built for:
//
//   - Linux/macOS: "/usr/local/bin/gds-mcp-server" → "gds-mcp-server"
//   - Windows: "C:\bin\gds-mcp-server.exe" → "gds-mcp-server"
//   - Fallback: empty args → [DefaultExecutableName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
