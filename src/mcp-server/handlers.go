// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"text/template"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
)

// instructionData holds the data used to populate the server instructions template.
type instructionData struct {
	Tools     []ToolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
	Resources []ResourceInfo
}

// ToolInfo is the name and description of a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResourceInfo is the user-facing metadata of a registered resource.
type ResourceInfo struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

// toolInfos extracts name and description from tool definitions, keeping their order.
func toolInfos(tools []ToolDefinition) []ToolInfo {
	infos := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		infos = append(infos, ToolInfo{Name: t.Tool.Name, Description: t.Tool.Description})
	}
	return infos
}

// resourceInfos extracts user-facing metadata from resource definitions, keeping their order.
func resourceInfos(resources []ResourceDefinition) []ResourceInfo {
	infos := make([]ResourceInfo, 0, len(resources))
	for _, r := range resources {
		infos = append(infos, ResourceInfo{
			URI:         r.Resource.URI,
			Name:        r.Resource.Name,
			Description: r.Resource.Description,
			MIMEType:    r.Resource.MIMEType,
		})
	}
	return infos
}

// loadInstructions renders the instructions sent to clients in the initialize result.
//
// Parameters:
//   - fsys: Embedded filesystem holding the instructions template
//   - tools: Registered tools, listed in order
//   - resources: Registered resources, or nil when resources are disabled
//
// Returns:
//   - string: The rendered instruction text
//   - error: If the embedded file cannot be read or template parsing fails
func loadInstructions(fsys templates.EmbedFS, tools []ToolDefinition, resources []ResourceDefinition) (string, error) {
	templateBytes, err := fsys.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load server instructions template: %w", err)
	}

	toolRoles := make(map[string]string, len(tools))
	for _, tool := range tools {
		if tool.Role != "" {
			toolRoles[tool.Role] = tool.Tool.Name
		}
	}

	data := instructionData{
		Tools:     toolInfos(tools),
		ToolRoles: toolRoles,
		Resources: resourceInfos(resources),
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}
