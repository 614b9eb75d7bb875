// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the offline subcommands of the GDS MCP server binary.
// They answer from the same dispatcher the HTTP server uses, so listing tools,
// generating component files or classifying a prompt on the command line
// gives exactly what an MCP client would receive. Tables are rendered as
// markdown with tablewriter and JSON output goes through the sonic codec.
package cli
