// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	"gopkg.in/yaml.v3"
)

// GuideTitle is the heading placed above the guide when it is served on its own.
const GuideTitle = "# Chakra UI v3 API for GDS"

// headerSeparator sits between the guide and the body in [Library.WithHeader].
const headerSeparator = "\n\n"

// FileReader is the subset of an embedded filesystem the library needs.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// Token is a semantic design token.
type Token struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

// Rename maps component names removed in Chakra UI v3 to their replacements.
type Rename struct {
	Deprecated []string `json:"deprecated" yaml:"deprecated"`
	Use        []string `json:"use" yaml:"use"`
	Note       string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Platform describes the packages a GDS app is built from.
type Platform struct {
	Name           string            `json:"name" yaml:"name"`
	Framework      string            `json:"framework" yaml:"framework"`
	Language       string            `json:"language" yaml:"language"`
	Provider       string            `json:"provider" yaml:"provider"`
	Packages       map[string]string `json:"packages" yaml:"packages"`
	PrimaryPalette string            `json:"primaryPalette" yaml:"primaryPalette"`
}

type catalog struct {
	Platform   Platform `yaml:"platform"`
	Tokens     []Token  `yaml:"tokens"`
	Components []Rename `yaml:"components"`
}

// Library serves the fixed reference text. It is immutable after [NewLibrary] returns.
type Library struct {
	guide     string
	loginCard string
	generic   *template.Template
	catalog   catalog

	// tool names substituted into the generic instruction body
	generateTool string
	loginTool    string
}

// LibraryOption customizes a [Library].
type LibraryOption func(*Library)

// WithToolNames sets the tool names mentioned by [Library.GenericInstructions].
func WithToolNames(generate, login string) LibraryOption {
	return func(l *Library) {
		l.generateTool = generate
		l.loginTool = login
	}
}

// NewLibrary loads the guide, snippet, generic instruction template and catalog from fsys.
//
// Parameters:
//   - fsys: Source of the embedded files, normally [templates.MagicEmbed]
//   - opts: Optional customizations
//
// Returns:
//   - *Library: Ready-to-use library
//   - error: If any file is missing, a template does not parse, or the catalog is malformed
func NewLibrary(fsys FileReader, opts ...LibraryOption) (*Library, error) {
	l := &Library{
		generateTool: "gds_generate_component",
		loginTool:    "gds_snippet_login_card",
	}
	for _, opt := range opts {
		opt(l)
	}

	guide, err := fsys.ReadFile(templates.GuideFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read guide: %w", err)
	}
	l.guide = strings.TrimSpace(string(guide))

	snippet, err := fsys.ReadFile(templates.LoginCardFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read login card snippet: %w", err)
	}
	l.loginCard = string(snippet)

	generic, err := fsys.ReadFile(templates.GenericInstructionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read generic instructions template: %w", err)
	}
	if l.generic, err = template.New("generic").Option("missingkey=error").Parse(string(generic)); err != nil {
		return nil, fmt.Errorf("failed to parse generic instructions template: %w", err)
	}

	raw, err := fsys.ReadFile(templates.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if err := yaml.Unmarshal(raw, &l.catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return l, nil
}

// Guide returns the Chakra UI v3 naming rules.
func (l *Library) Guide() string { return l.guide }

// GuideDocument returns the guide under its title, as served by the guide tool.
func (l *Library) GuideDocument() string { return GuideTitle + "\n" + l.guide }

// LoginCard returns the LoginCard example component.
func (l *Library) LoginCard() string { return l.loginCard }

// WithHeader prefixes body with the guide and a blank line.
func (l *Library) WithHeader(body string) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(l.guide)
	buf.WriteString(headerSeparator)
	buf.WriteString(body)
	return buf.String()
}

// GenericInstructions renders the instruction body used for prompts that are not login requests.
// The prompt is embedded verbatim.
func (l *Library) GenericInstructions(prompt string) (string, error) {
	data := struct {
		Prompt       string
		GenerateTool string
		LoginTool    string
	}{
		Prompt:       prompt,
		GenerateTool: l.generateTool,
		LoginTool:    l.loginTool,
	}

	var sb strings.Builder
	if err := l.generic.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute generic instructions template: %w", err)
	}
	return sb.String(), nil
}

// Tokens returns a copy of the semantic token catalog.
func (l *Library) Tokens() []Token { return slices.Clone(l.catalog.Tokens) }

// Renames returns a copy of the v3 rename table.
func (l *Library) Renames() []Rename { return slices.Clone(l.catalog.Components) }

// Platform returns the platform descriptor.
func (l *Library) Platform() Platform {
	p := l.catalog.Platform
	p.Packages = maps.Clone(p.Packages)
	return p
}
