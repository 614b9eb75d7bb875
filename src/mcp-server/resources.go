// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs served by resources/read.
const (
	ResourceGuide      = "gds://guide/chakra-v3"
	ResourceLoginCard  = "gds://snippet/login-card"
	ResourceTokens     = "gds://tokens"
	ResourceComponents = "gds://components"
	ResourcePlatform   = "gds://platform"
)

// ResourceHandler produces the contents of one resource.
//
// Parameters:
//   - ctx: Request context
//   - lib: Template library the contents are read from
//   - request: The resources/read request
//
// Returns:
//   - []mcp.ResourceContents: Contents reported under "contents"
//   - error: A *jsonrpc.Error for client mistakes, anything else becomes an internal error
type ResourceHandler func(ctx context.Context, lib *gds.Library, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// ResourceDefinition pairs a resource descriptor with its handler.
type ResourceDefinition struct {
	Resource mcp.Resource
	Handler  ResourceHandler
}

// createResources returns the built-in resources in the order resources/list reports them.
func createResources() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Resource: mcp.NewResource(ResourceGuide, "Chakra UI v3 guide",
				mcp.WithResourceDescription("Chakra UI v3 naming rules for GDS: deprecated names and their replacements"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleGuideResource,
		},
		{
			Resource: mcp.NewResource(ResourceLoginCard, "LoginCard snippet",
				mcp.WithResourceDescription("Production-ready LoginCard component written with Chakra UI v3 and GDS"),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: handleLoginCardResource,
		},
		{
			Resource: mcp.NewResource(ResourceTokens, "Semantic tokens",
				mcp.WithResourceDescription("Semantic design tokens used by generated components"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleTokensResource,
		},
		{
			Resource: mcp.NewResource(ResourceComponents, "Component renames",
				mcp.WithResourceDescription("Chakra UI v2 component names and the v3 names that replace them"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleComponentsResource,
		},
		{
			Resource: mcp.NewResource(ResourcePlatform, "Platform",
				mcp.WithResourceDescription("Framework, language and packages a GDS application is built from"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handlePlatformResource,
		},
	}
}

// DefaultResources returns a fresh copy of the built-in resource registry.
func DefaultResources() []ResourceDefinition { return createResources() }
