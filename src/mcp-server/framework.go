// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/version"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ServerName is reported as serverInfo.name in the initialize result.
const ServerName = "gds-mcp-server"

var (
	// ErrDuplicateTool is returned by [ServerBuilder.Build] when two tools share a name.
	ErrDuplicateTool = errors.New("duplicate tool name")
	// ErrDuplicateResource is returned by [ServerBuilder.Build] when two resources share a URI.
	ErrDuplicateResource = errors.New("duplicate resource uri")
	// ErrUnknownToolID is returned by [ServerBuilder.Build] for a tool whose ID selects no handler.
	ErrUnknownToolID = errors.New("tool has no handler")
	// ErrMissingLibrary is returned by [ServerBuilder.Build] when no embedded filesystem was supplied.
	ErrMissingLibrary = errors.New("template library is not configured")
)

// ServerDependencies holds all dependencies needed to create the dispatcher.
//
// Fields:
//   - Config: Server configuration (defaults are used when nil)
//   - Embed: Embedded filesystem with the guide, snippet, templates and catalog
//   - Version: Server version reported by initialize
//   - Logger: Structured logger (a no-op logger is used when nil)
//   - Tools: Tool registry, in tools/list order
//   - Resources: Resource registry, in resources/list order
//   - Instructions: Instructions for initialize; rendered from the embedded template when empty
type ServerDependencies struct {
	Config       *Config
	Embed        templates.EmbedFS
	Version      string
	Logger       *zap.Logger
	Tools        []ToolDefinition
	Resources    []ResourceDefinition
	Instructions string
}

// ServerBuilder constructs a [Dispatcher] using a fluent interface.
//
// Example:
//
//	d, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithEmbed(templates.MagicEmbed).
//		WithDefaultTools().
//		WithDefaultResources().
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem the template library is loaded from.
func (b *ServerBuilder) WithEmbed(fsys templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fsys
	return b
}

// WithVersion sets the server version reported by initialize.
func (b *ServerBuilder) WithVersion(v string) *ServerBuilder {
	b.deps.Version = v
	return b
}

// WithLogger sets the structured logger.
func (b *ServerBuilder) WithLogger(log *zap.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools appends tool definitions to the registry.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools appends the built-in GDS tools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithResources appends resource definitions to the registry.
func (b *ServerBuilder) WithResources(resources ...ResourceDefinition) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultResources appends the built-in GDS resources.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	return b.WithResources(createResources()...)
}

// WithInstructions overrides the rendered instructions.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build validates the registries and returns an immutable [Dispatcher].
//
// Returns:
//   - *Dispatcher: Ready to serve requests concurrently
//   - error: On duplicate tool names or resource URIs, an unknown tool ID,
//     a schema that does not compile, or a missing or broken template library
func (b *ServerBuilder) Build() (*Dispatcher, error) {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if b.deps.Embed == nil {
		return nil, ErrMissingLibrary
	}

	log := b.deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ver := b.deps.Version
	if ver == "" {
		ver = version.Version
	}

	d := &Dispatcher{
		version:          ver,
		protocolVersion:  cfg.Protocol.Version,
		enforceAccept:    cfg.Protocol.EnforceAccept,
		resourcesEnabled: cfg.Protocol.Resources,
		tools:            make([]*registeredTool, 0, len(b.deps.Tools)),
		toolsByName:      make(map[string]*registeredTool, len(b.deps.Tools)),
		toolList:         make([]mcp.Tool, 0, len(b.deps.Tools)),
		resourcesByURI:   make(map[string]ResourceDefinition, len(b.deps.Resources)),
		resourceList:     make([]mcp.Resource, 0, len(b.deps.Resources)),
		log:              log,
	}
	if d.protocolVersion == "" {
		d.protocolVersion = DefaultProtocolVersion
	}

	var generateTool, loginTool string
	for _, def := range b.deps.Tools {
		if _, exists := d.toolsByName[def.Tool.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, def.Tool.Name)
		}
		if !def.ID.valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownToolID, def.Tool.Name)
		}
		schema, err := compileInputSchema(def.Tool)
		if err != nil {
			return nil, err
		}
		rt := &registeredTool{def: def, schema: schema}
		d.tools = append(d.tools, rt)
		d.toolsByName[def.Tool.Name] = rt
		d.toolList = append(d.toolList, def.Tool)

		switch def.ID {
		case ToolGenerateComponent:
			generateTool = def.Tool.Name
		case ToolLoginSnippet:
			loginTool = def.Tool.Name
		}
	}

	for _, def := range b.deps.Resources {
		if _, exists := d.resourcesByURI[def.Resource.URI]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateResource, def.Resource.URI)
		}
		if def.Handler == nil {
			return nil, fmt.Errorf("resource %s has no handler", def.Resource.URI)
		}
		d.resourcesByURI[def.Resource.URI] = def
		d.resources = append(d.resources, def)
		d.resourceList = append(d.resourceList, def.Resource)
	}

	var libOpts []gds.LibraryOption
	if generateTool != "" && loginTool != "" {
		libOpts = append(libOpts, gds.WithToolNames(generateTool, loginTool))
	}
	lib, err := gds.NewLibrary(b.deps.Embed, libOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load template library: %w", err)
	}
	gen, err := gds.NewGenerator(b.deps.Embed)
	if err != nil {
		return nil, fmt.Errorf("failed to load component templates: %w", err)
	}
	d.library = lib
	d.generator = gen

	d.instructions = b.deps.Instructions
	if d.instructions == "" {
		var listed []ResourceDefinition
		if d.resourcesEnabled {
			listed = d.resources
		}
		instructions, err := loadInstructions(b.deps.Embed, b.deps.Tools, listed)
		if err != nil {
			return nil, err
		}
		d.instructions = instructions
	}

	return d, nil
}
