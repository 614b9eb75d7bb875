// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gds

import (
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
)

// componentDir is where generated files are placed, relative to the app root.
const componentDir = "src/components/"

// File is one generated source file. Nothing is written to disk.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Payload is the result of [Generator.Generate].
type Payload struct {
	Files []File   `json:"files"`
	Notes []string `json:"notes"`
}

var defaultNotes = []string{
	"Wrap your app with GDSProvider from @gdesignsystem/react.",
	"Use semantic tokens: bg.default, fg, fg.muted, border.muted.",
	"GDS uses Chakra UI v3 only: use colorPalette (not colorScheme), put icons as Button children (not leftIcon/rightIcon). " +
		"Forms: Field.Root, Field.Label, Field.HelperText, Field.ErrorText (not FormControl/FormLabel). " +
		"Tables: Table.Root, Table.Header, Table.Body, Table.Row, Table.ColumnHeader, Table.Cell (not Table/Thead/Tbody/Tr/Th/Td).",
}

// Generator renders component scaffolds from the embedded templates.
type Generator struct {
	component *template.Template
	index     *template.Template
}

// NewGenerator parses the component and index templates from fsys.
func NewGenerator(fsys FileReader) (*Generator, error) {
	component, err := parseTemplate(fsys, templates.ComponentTemplateFile)
	if err != nil {
		return nil, err
	}
	index, err := parseTemplate(fsys, templates.IndexTemplateFile)
	if err != nil {
		return nil, err
	}
	return &Generator{component: component, index: index}, nil
}

func parseTemplate(fsys FileReader, name string) (*template.Template, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return tmpl, nil
}

// Generate substitutes name and purpose into the component and index templates.
//
// Both values are embedded exactly as given: no trimming, escaping or
// validation happens here. Callers reject blank input before calling.
func (g *Generator) Generate(name, purpose string) (Payload, error) {
	data := struct{ Name, Purpose string }{Name: name, Purpose: purpose}

	var component, index strings.Builder
	if err := g.component.Execute(&component, data); err != nil {
		return Payload{}, fmt.Errorf("failed to render component file: %w", err)
	}
	if err := g.index.Execute(&index, data); err != nil {
		return Payload{}, fmt.Errorf("failed to render index file: %w", err)
	}

	return Payload{
		Files: []File{
			{Path: componentDir + name + ".tsx", Content: component.String()},
			{Path: componentDir + "index.ts", Content: index.String()},
		},
		Notes: slices.Clone(defaultNotes),
	}, nil
}
