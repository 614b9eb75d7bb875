// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gds

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary(templates.MagicEmbed)
	require.NoError(t, err)
	return lib
}

// embeddedMapFS copies the embedded templates into a MapFS, minus the named files.
func embeddedMapFS(t *testing.T, without ...string) fstest.MapFS {
	t.Helper()
	names := []string{
		templates.GuideFile,
		templates.LoginCardFile,
		templates.ComponentTemplateFile,
		templates.IndexTemplateFile,
		templates.GenericInstructionsFile,
		templates.CatalogFile,
	}
	fsys := fstest.MapFS{}
	for _, name := range names {
		data, err := templates.MagicEmbed.ReadFile(name)
		require.NoError(t, err)
		fsys[name] = &fstest.MapFile{Data: data}
	}
	for _, name := range without {
		delete(fsys, name)
	}
	return fsys
}

func TestLibraryGuide(t *testing.T) {
	lib := newTestLibrary(t)

	guide := lib.Guide()
	assert.True(t, strings.HasPrefix(guide, "--- GDS: Chakra UI v3 only"))
	assert.True(t, strings.HasSuffix(guide, "\n---"))
	assert.Contains(t, guide, "Do NOT use: Divider → use Separator")
	assert.Contains(t, guide, "Do NOT use: Modal, ModalOverlay")

	assert.Equal(t, "# Chakra UI v3 API for GDS\n"+guide, lib.GuideDocument())
}

func TestLibraryWithHeader(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "plain body", body: "export const x = 1;"},
		{name: "empty body", body: ""},
		{name: "multiline body", body: "line one\nline two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.WithHeader(tt.body)
			assert.Equal(t, lib.Guide()+"\n\n"+tt.body, got)
			assert.True(t, strings.HasSuffix(got, tt.body))
		})
	}
}

func TestLibraryLoginCard(t *testing.T) {
	lib := newTestLibrary(t)

	snippet := lib.LoginCard()
	for _, want := range []string{
		`import * as React from "react";`,
		"export function LoginCard()",
		"<Card.Root",
		"<Field.Root invalid={!!emailError}>",
		"endElement={",
		"<Checkbox.Root>",
		"<Separator />",
		`colorPalette="brand"`,
	} {
		assert.Contains(t, snippet, want)
	}
	assert.NotContains(t, snippet, "FormControl")
	assert.NotContains(t, snippet, "Divider")
}

func TestLibraryGenericInstructions(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		name     string
		prompt   string
		contains []string
	}{
		{
			name:     "prompt embedded verbatim",
			prompt:   "create a dashboard <with> {{charts}}",
			contains: []string{"Prompt: create a dashboard <with> {{charts}}", "gds_generate_component", "gds_snippet_login_card"},
		},
		{
			name:     "empty prompt",
			prompt:   "",
			contains: []string{"Prompt: (none)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lib.GenericInstructions(tt.prompt)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLibraryWithToolNames(t *testing.T) {
	lib, err := NewLibrary(templates.MagicEmbed, WithToolNames("make_component", "login_snippet"))
	require.NoError(t, err)

	got, err := lib.GenericInstructions("settings page")
	require.NoError(t, err)
	assert.Contains(t, got, "`make_component`")
	assert.Contains(t, got, "`login_snippet`")
}

func TestLibraryCatalog(t *testing.T) {
	lib := newTestLibrary(t)

	tokens := lib.Tokens()
	require.NotEmpty(t, tokens)
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		names = append(names, tok.Name)
	}
	assert.Subset(t, names, []string{"bg.default", "fg", "fg.muted", "border.muted"})

	renames := lib.Renames()
	require.NotEmpty(t, renames)
	assert.Equal(t, []string{"Divider"}, renames[0].Deprecated)
	assert.Equal(t, []string{"Separator"}, renames[0].Use)

	platform := lib.Platform()
	assert.Equal(t, "GDSProvider", platform.Provider)
	assert.Equal(t, "@gdesignsystem/react", platform.Packages["react"])

	// returned values are copies
	tokens[0].Name = "mutated"
	renames[0].Note = "mutated"
	platform.Packages["react"] = "mutated"
	assert.NotEqual(t, "mutated", lib.Tokens()[0].Name)
	assert.Empty(t, lib.Renames()[0].Note)
	assert.Equal(t, "@gdesignsystem/react", lib.Platform().Packages["react"])
}

func TestNewLibraryErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    func(t *testing.T) fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing guide",
			fsys:    func(t *testing.T) fstest.MapFS { return embeddedMapFS(t, templates.GuideFile) },
			wantErr: "failed to read guide",
		},
		{
			name:    "missing snippet",
			fsys:    func(t *testing.T) fstest.MapFS { return embeddedMapFS(t, templates.LoginCardFile) },
			wantErr: "failed to read login card snippet",
		},
		{
			name: "broken generic template",
			fsys: func(t *testing.T) fstest.MapFS {
				fsys := embeddedMapFS(t)
				fsys[templates.GenericInstructionsFile] = &fstest.MapFile{Data: []byte("{{.Prompt")}
				return fsys
			},
			wantErr: "failed to parse generic instructions template",
		},
		{
			name: "malformed catalog",
			fsys: func(t *testing.T) fstest.MapFS {
				fsys := embeddedMapFS(t)
				fsys[templates.CatalogFile] = &fstest.MapFile{Data: []byte("tokens: [unclosed")}
				return fsys
			},
			wantErr: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(tt.fsys(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
