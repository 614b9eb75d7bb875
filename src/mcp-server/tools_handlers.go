// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"
)

// schemaRootField is what gojsonschema reports as the field of errors raised on the arguments object itself.
const schemaRootField = "(root)"

// registeredTool is a tool definition with its compiled input schema.
type registeredTool struct {
	def    ToolDefinition
	schema *gojsonschema.Schema
}

// compileInputSchema compiles the tool's input schema for argument validation.
func compileInputSchema(tool mcp.Tool) (*gojsonschema.Schema, error) {
	raw, err := jsonx.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema of %s: %w", tool.Name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile input schema of %s: %w", tool.Name, err)
	}
	return schema, nil
}

// validateArguments checks args against the tool's input schema.
//
// Required string properties are checked first, in declaration order, and
// must hold non-blank text. The full schema runs afterwards. The first
// violation found is reported naming the offending field.
func (t *registeredTool) validateArguments(args map[string]any) *jsonrpc.Error {
	schema := t.def.Tool.InputSchema
	for _, field := range schema.Required {
		prop, _ := schema.Properties[field].(map[string]any)
		if prop["type"] != "string" {
			continue
		}
		if s, ok := args[field].(string); !ok || strings.TrimSpace(s) == "" {
			return jsonrpc.InvalidArgument(field)
		}
	}

	if t.schema == nil {
		return nil
	}

	result, err := t.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return jsonrpc.InvalidArgument("arguments")
	}
	if result.Valid() {
		return nil
	}
	return jsonrpc.InvalidArgument(schemaErrorField(result.Errors()[0]))
}

// schemaErrorField names the argument a schema error is about.
func schemaErrorField(e gojsonschema.ResultError) string {
	field := e.Field()
	if field != schemaRootField {
		return field
	}
	if prop, ok := e.Details()["property"].(string); ok && prop != "" {
		return prop
	}
	return "arguments"
}

// callTool runs the handler selected by def.ID. The switch is exhaustive over
// [ToolID]; the default arm only fires for a definition that bypassed the builder.
func (d *Dispatcher) callTool(ctx context.Context, def ToolDefinition, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch def.ID {
	case ToolGenerateComponent:
		return d.handleGenerateComponent(ctx, request)
	case ToolChakraGuide:
		return d.handleChakraGuide(ctx)
	case ToolLoginSnippet:
		return d.handleLoginSnippet(ctx)
	default:
		return nil, jsonrpc.UnknownTool(def.Tool.Name)
	}
}

// handleGenerateComponent renders the component and index files.
//
// Parameters:
//   - ctx: Request context
//   - request: Call whose validated arguments hold non-blank "name" and "purpose"
//
// Returns:
//   - *mcp.CallToolResult: Guide-prefixed JSON payload as text, and the payload itself as structured content
//   - error: If rendering or encoding fails
func (d *Dispatcher) handleGenerateComponent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	purpose := request.GetString("purpose", "")

	payload, err := d.generator.Generate(name, purpose)
	if err != nil {
		return nil, err
	}

	body, err := jsonx.MarshalIndent(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated files: %w", err)
	}

	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(d.library.WithHeader(string(body)))},
		StructuredContent: payload,
	}, nil
}

// handleChakraGuide returns the guide under its title.
func (d *Dispatcher) handleChakraGuide(ctx context.Context) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(d.library.GuideDocument())},
	}, nil
}

// handleLoginSnippet returns the login card preceded by the guide.
func (d *Dispatcher) handleLoginSnippet(ctx context.Context) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(d.library.WithHeader(d.library.LoginCard()))},
	}, nil
}
