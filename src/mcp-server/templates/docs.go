// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the static text served by the GDS MCP server.
//
// The files fall into three groups:
//   - reference text returned as-is: the Chakra UI v3 naming guide and the LoginCard snippet
//   - [text/template] sources: the component and index scaffolds, the generic
//     instruction body, the MCP server instructions and the CLI help
//   - catalog.yaml: design tokens, the v3 rename table and the platform descriptor
//
// [MagicEmbed] is the default [EmbedFS]; tests and alternative builds can pass
// any value implementing the same interface.
//
// Example usage:
//
//	guide, err := templates.MagicEmbed.ReadFile(templates.GuideFile)
//	if err != nil {
//		return fmt.Errorf("failed to read guide: %w", err)
//	}
package templates
