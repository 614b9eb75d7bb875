// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolID identifies a tool handler. The set is closed: every registered tool
// maps to exactly one of the values below, and dispatch switches over them.
type ToolID int

const (
	toolUnknown ToolID = iota
	// ToolGenerateComponent renders a component and its index file.
	ToolGenerateComponent
	// ToolChakraGuide returns the naming-rules guide.
	ToolChakraGuide
	// ToolLoginSnippet returns the login card snippet.
	ToolLoginSnippet
)

// Tool names as seen by clients.
const (
	ToolNameGenerateComponent = "gds_generate_component"
	ToolNameChakraGuide       = "gds_chakra_v3_guide"
	ToolNameLoginSnippet      = "gds_snippet_login_card"
)

// String returns the canonical tool name for id.
func (id ToolID) String() string {
	switch id {
	case ToolGenerateComponent:
		return ToolNameGenerateComponent
	case ToolChakraGuide:
		return ToolNameChakraGuide
	case ToolLoginSnippet:
		return ToolNameLoginSnippet
	default:
		return "unknown"
	}
}

func (id ToolID) valid() bool {
	return id > toolUnknown && id <= ToolLoginSnippet
}

// ToolDefinition pairs a tool descriptor with the handler it dispatches to.
//
// Fields:
//   - Tool: Descriptor returned by tools/list
//   - ID: Handler selector
//   - Role: Short role name used by the instructions template
type ToolDefinition struct {
	Tool mcp.Tool
	ID   ToolID
	Role string
}

// createTools returns the built-in tool definitions in the order tools/list reports them.
//
// The function defines the following tools:
//   - gds_generate_component: Renders a component file and its index re-export
//   - gds_chakra_v3_guide: Returns the Chakra UI v3 naming rules
//   - gds_snippet_login_card: Returns a ready-made login card
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolNameGenerateComponent,
				mcp.WithDescription("Generates a React (TS) component using Chakra UI v3 + GDS. "+
					"Use for ANY GDS UI: dashboard, inbox, content page, card, layout, list, table, etc. "+
					"For login/sign-in forms use gds_snippet_login_card instead. "+
					"Before generating ANY GDS code in this chat, call gds_chakra_v3_guide first if you have not yet; "+
					"then use ONLY v3 names (Separator not Divider, Field.Root not FormControl, Card.Root not Card, etc.). "+
					"Returns files[] and v3 reference."),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Component name, e.g. LoginCard"),
				),
				mcp.WithString("purpose",
					mcp.Required(),
					mcp.Description("What the component does"),
				),
			),
			ID:   ToolGenerateComponent,
			Role: "generator",
		},
		{
			Tool: mcp.NewTool(ToolNameChakraGuide,
				mcp.WithDescription("Call this FIRST whenever the user asks for ANY UI with GDS: "+
					"dashboard, inbox, content page, form, card, layout, settings, list, table, modal, etc. "+
					"Returns Chakra v3 renames (Divider→Separator, FormControl→Field.Root, Card→Card.Root, "+
					"Checkbox→Checkbox.Root, InputRightElement→InputGroup endElement, colorScheme→colorPalette, "+
					"Table→Table.Root, Modal→Dialog.*). Use ONLY these names when generating code. "+
					"Prevents 'doesn't provide an export named X' errors."),
			),
			ID:   ToolChakraGuide,
			Role: "guide",
		},
		{
			Tool: mcp.NewTool(ToolNameLoginSnippet,
				mcp.WithDescription("Returns a production-ready LoginCard in Chakra v3 only. "+
					"Use when the user asks for a login form, sign-in card, or email+password form with GDS. "+
					"For any other GDS UI (dashboard, inbox, content page, etc.) call gds_chakra_v3_guide first "+
					"then generate code using only v3 names."),
			),
			ID:   ToolLoginSnippet,
			Role: "loginSnippet",
		},
	}
}

// DefaultTools returns a fresh copy of the built-in tool registry.
func DefaultTools() []ToolDefinition { return createTools() }
