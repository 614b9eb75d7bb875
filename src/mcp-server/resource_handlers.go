// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleGuideResource serves the naming-rules guide under its title.
func handleGuideResource(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textContents(request.Params.URI, "text/markdown", lib.GuideDocument()), nil
}

// handleLoginCardResource serves the raw login snippet. Unlike the tool, no
// guide header is prepended so clients can prefetch the file as-is.
func handleLoginCardResource(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textContents(request.Params.URI, "text/plain", lib.LoginCard()), nil
}

// handleTokensResource serves the semantic token catalog as JSON.
func handleTokensResource(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(request.Params.URI, map[string]any{"tokens": lib.Tokens()})
}

// handleComponentsResource serves the component rename table as JSON.
func handleComponentsResource(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(request.Params.URI, map[string]any{"components": lib.Renames()})
}

// handlePlatformResource serves the platform descriptor as JSON.
func handlePlatformResource(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(request.Params.URI, lib.Platform())
}

func textContents(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}
}

// jsonContents marshals v with two-space indentation.
//
// Parameters:
//   - uri: Resource URI echoed in the contents
//   - v: Value to encode
//
// Returns:
//   - []mcp.ResourceContents: A single application/json text entry
//   - error: If marshaling fails
func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := jsonx.MarshalIndent(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}
	return textContents(uri, "application/json", string(data)), nil
}
