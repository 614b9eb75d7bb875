// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Dispatcher routes decoded JSON-RPC requests to their handlers.
//
// A Dispatcher is built once by [ServerBuilder.Build] and never mutated
// afterwards, so a single value may serve any number of concurrent requests.
type Dispatcher struct {
	version          string
	protocolVersion  string
	enforceAccept    bool
	resourcesEnabled bool
	instructions     string

	library   *gds.Library
	generator *gds.Generator

	tools       []*registeredTool
	toolsByName map[string]*registeredTool
	toolList    []mcp.Tool

	resources      []ResourceDefinition
	resourcesByURI map[string]ResourceDefinition
	resourceList   []mcp.Resource

	log *zap.Logger
}

type serverCapabilities struct {
	Tools     struct{}  `json:"tools"`
	Resources *struct{} `json:"resources,omitempty"`
}

// initializeResult carries the client's protocolVersion as sent, whatever its JSON type.
type initializeResult struct {
	ProtocolVersion any                `json:"protocolVersion"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
	Capabilities    serverCapabilities `json:"capabilities"`
	Instructions    string             `json:"instructions,omitempty"`
}

type initializeParams struct {
	ClientInfo mcp.Implementation `json:"clientInfo"`
}

type toolsListResult struct {
	Tools []mcp.Tool `json:"tools"`
}

// MarshalJSON advertises every input schema with additionalProperties set to
// false. Arguments are still validated against the open schema, so extra
// keys sent by a client are accepted.
func (r toolsListResult) MarshalJSON() ([]byte, error) {
	tools := make([]map[string]any, 0, len(r.Tools))
	for _, tool := range r.Tools {
		raw, err := jsonx.Marshal(tool)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tool %s: %w", tool.Name, err)
		}
		var descriptor map[string]any
		if err := jsonx.Unmarshal(raw, &descriptor); err != nil {
			return nil, fmt.Errorf("failed to decode tool %s: %w", tool.Name, err)
		}
		if schema, ok := descriptor["inputSchema"].(map[string]any); ok {
			schema["additionalProperties"] = false
		}
		tools = append(tools, descriptor)
	}
	return jsonx.Marshal(map[string]any{"tools": tools})
}

type resourcesListResult struct {
	Resources []mcp.Resource `json:"resources"`
}

type readResourceResult struct {
	Contents []mcp.ResourceContents `json:"contents"`
}

// Dispatch answers one request.
//
// Parameters:
//   - ctx: Request context
//   - req: Decoded request envelope
//   - header: Request headers; only Accept is inspected
//
// Returns:
//   - jsonrpc.Response: Success or error envelope, never both
//   - int: HTTP status to send it with (200, 406 or 500)
//
// The Accept header is checked before anything else, including the id. A
// panic inside a handler is recovered and reported as an internal error.
func (d *Dispatcher) Dispatch(ctx context.Context, req jsonrpc.Request, header http.Header) (resp jsonrpc.Response, status int) {
	start := time.Now()

	if d.enforceAccept && !acceptable(header) {
		d.log.Warn("rejected request",
			zap.String("method", req.Method),
			zap.Strings("accept", header.Values("Accept")),
			zap.Int("status", http.StatusNotAcceptable),
		)
		return jsonrpc.NewError(nil, jsonrpc.NotAcceptable()), http.StatusNotAcceptable
	}

	id, err := jsonrpc.ParseID(req.ID)
	if err != nil {
		d.log.Warn("rejected request", zap.String("method", req.Method), zap.Error(err))
		return jsonrpc.NewError(nil, jsonrpc.InvalidRequest("malformed id")), http.StatusOK
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("handler panicked",
				zap.String("method", req.Method),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			resp, status = jsonrpc.NewError(id, jsonrpc.Internal("unexpected failure")), http.StatusInternalServerError
		}
		d.log.Info("handled request",
			zap.String("method", req.Method),
			zap.Any("id", id),
			zap.Int("status", status),
			zap.Bool("error", resp.Error != nil),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	result, err := d.route(ctx, req)
	if err != nil {
		var rpcErr *jsonrpc.Error
		if errors.As(err, &rpcErr) {
			return jsonrpc.NewError(id, rpcErr), http.StatusOK
		}
		d.log.Error("request failed", zap.String("method", req.Method), zap.Error(err))
		return jsonrpc.NewError(id, jsonrpc.Internal(err.Error())), http.StatusInternalServerError
	}
	return jsonrpc.NewResult(id, result), http.StatusOK
}

// route selects the handler for req.Method.
func (d *Dispatcher) route(ctx context.Context, req jsonrpc.Request) (any, error) {
	switch mcp.MCPMethod(req.Method) {
	case mcp.MethodInitialize:
		return d.initialize(req.Params), nil
	case mcp.MethodToolsList:
		return toolsListResult{Tools: d.toolList}, nil
	case mcp.MethodToolsCall:
		return d.callToolRequest(ctx, req.Params)
	case mcp.MethodResourcesList:
		if d.resourcesEnabled {
			return resourcesListResult{Resources: d.resourceList}, nil
		}
	case mcp.MethodResourcesRead:
		if d.resourcesEnabled {
			return d.readResource(ctx, req.Params)
		}
	case mcp.MethodPing:
		return struct{}{}, nil
	}
	return nil, jsonrpc.MethodNotSupported(req.Method)
}

// initialize builds the handshake result. It never fails.
func (d *Dispatcher) initialize(params map[string]any) initializeResult {
	var protocolVersion any = d.protocolVersion
	if v, ok := params["protocolVersion"]; ok && v != nil {
		protocolVersion = v
	}

	var p initializeParams
	if params != nil && jsonrpc.UnmarshalFromMap(params, &p) == nil && p.ClientInfo.Name != "" {
		d.log.Info("client connected",
			zap.String("client", p.ClientInfo.Name),
			zap.String("clientVersion", p.ClientInfo.Version),
			zap.Any("protocolVersion", protocolVersion),
		)
	}

	result := initializeResult{
		ProtocolVersion: protocolVersion,
		ServerInfo:      mcp.Implementation{Name: ServerName, Version: d.version},
		Instructions:    d.instructions,
	}
	if d.resourcesEnabled {
		result.Capabilities.Resources = &struct{}{}
	}
	return result
}

// callToolRequest validates a tools/call request and runs the tool.
func (d *Dispatcher) callToolRequest(ctx context.Context, params map[string]any) (*mcp.CallToolResult, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return nil, jsonrpc.InvalidArgument("name")
	}

	tool, ok := d.toolsByName[name]
	if !ok {
		return nil, jsonrpc.UnknownTool(name)
	}

	args := map[string]any{}
	if raw, present := params["arguments"]; present && raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, jsonrpc.InvalidArgument("arguments")
		}
		args = m
	}
	if rpcErr := tool.validateArguments(args); rpcErr != nil {
		return nil, rpcErr
	}

	d.log.Debug("calling tool", zap.String("tool", name), zap.Stringer("id", tool.def.ID))
	return d.callTool(ctx, tool.def, mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
}

// readResource serves resources/read.
func (d *Dispatcher) readResource(ctx context.Context, params map[string]any) (*readResourceResult, error) {
	uri, ok := params["uri"].(string)
	if !ok || uri == "" {
		return nil, jsonrpc.InvalidArgument("uri")
	}

	def, ok := d.resourcesByURI[uri]
	if !ok {
		return nil, jsonrpc.UnknownResource(uri)
	}

	contents, err := def.Handler(ctx, d.library, mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: uri},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uri, err)
	}
	return &readResourceResult{Contents: contents}, nil
}

// acceptable reports whether the Accept header allows both JSON and event
// streams. An absent or blank header is accepted.
func acceptable(header http.Header) bool {
	accept := strings.ToLower(strings.Join(header.Values("Accept"), ","))
	if strings.TrimSpace(accept) == "" {
		return true
	}
	return strings.Contains(accept, "application/json") && strings.Contains(accept, "text/event-stream")
}

// Methods lists the methods this dispatcher answers.
func (d *Dispatcher) Methods() []string {
	methods := []string{
		string(mcp.MethodInitialize),
		string(mcp.MethodToolsList),
		string(mcp.MethodToolsCall),
	}
	if d.resourcesEnabled {
		methods = append(methods, string(mcp.MethodResourcesList), string(mcp.MethodResourcesRead))
	}
	return append(methods, string(mcp.MethodPing))
}

// Tools returns the tool descriptors in registry order.
func (d *Dispatcher) Tools() []mcp.Tool { return slices.Clone(d.toolList) }

// ToolInfos returns the name and description of every tool in registry order.
func (d *Dispatcher) ToolInfos() []ToolInfo {
	defs := make([]ToolDefinition, 0, len(d.tools))
	for _, t := range d.tools {
		defs = append(defs, t.def)
	}
	return toolInfos(defs)
}

// ResourceInfos returns resource metadata in registry order, or nil when resources are disabled.
func (d *Dispatcher) ResourceInfos() []ResourceInfo {
	if !d.resourcesEnabled {
		return nil
	}
	return resourceInfos(d.resources)
}

// ResourcesEnabled reports whether resources/list and resources/read are served.
func (d *Dispatcher) ResourcesEnabled() bool { return d.resourcesEnabled }

// Library returns the template library.
func (d *Dispatcher) Library() *gds.Library { return d.library }

// Generator returns the component generator.
func (d *Dispatcher) Generator() *gds.Generator { return d.generator }

// Instructions returns the instructions sent in the initialize result.
func (d *Dispatcher) Instructions() string { return d.instructions }

// Version returns the server version.
func (d *Dispatcher) Version() string { return d.version }

// ProtocolVersion returns the protocol version answered when the client sends none.
func (d *Dispatcher) ProtocolVersion() string { return d.protocolVersion }
