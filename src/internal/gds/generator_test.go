// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gds

import (
	"testing"
	"testing/fstest"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator(templates.MagicEmbed)
	require.NoError(t, err)
	return gen
}

func TestGenerate(t *testing.T) {
	gen := newTestGenerator(t)

	payload, err := gen.Generate("Hero", "Landing banner")
	require.NoError(t, err)

	require.Len(t, payload.Files, 2)
	assert.Equal(t, "src/components/Hero.tsx", payload.Files[0].Path)
	assert.Equal(t, "src/components/index.ts", payload.Files[1].Path)
	assert.Equal(t, "export * from \"./Hero\";\n", payload.Files[1].Content)

	component := payload.Files[0].Content
	for _, want := range []string{
		`import { Box, Heading, Text, Button } from "@chakra-ui/react";`,
		`import { CheckIcon } from "@gdesignsystem/icons";`,
		"export type HeroProps = {",
		`export function Hero({ title = "Hero" }: HeroProps) {`,
		"        Landing banner\n",
		`<Button mt={4} colorPalette="brand">`,
	} {
		assert.Contains(t, component, want)
	}

	require.Len(t, payload.Notes, 3)
	assert.Equal(t, "Wrap your app with GDSProvider from @gdesignsystem/react.", payload.Notes[0])
	assert.Equal(t, "Use semantic tokens: bg.default, fg, fg.muted, border.muted.", payload.Notes[1])
	assert.Contains(t, payload.Notes[2], "GDS uses Chakra UI v3 only")
}

func TestGenerateEmbedsInputsLiterally(t *testing.T) {
	gen := newTestGenerator(t)

	tests := []struct {
		name    string
		cName   string
		purpose string
	}{
		{name: "html-like purpose", cName: "Banner", purpose: `<b>"quoted" & bold</b>`},
		{name: "template delimiters", cName: "Weird", purpose: "{{.Name}} stays literal"},
		{name: "unicode", cName: "Kortti", purpose: "Näyttää käyttäjän tiedot"},
		{name: "padded values", cName: " Spaced ", purpose: "  keep my spaces  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := gen.Generate(tt.cName, tt.purpose)
			require.NoError(t, err)
			require.Len(t, payload.Files, 2)

			assert.Contains(t, payload.Files[0].Content, tt.cName+"Props")
			assert.Contains(t, payload.Files[0].Content, tt.purpose)
			assert.Contains(t, payload.Files[1].Content, tt.cName)
			assert.Equal(t, "src/components/"+tt.cName+".tsx", payload.Files[0].Path)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := newTestGenerator(t)

	first, err := gen.Generate("Card", "Shows a card")
	require.NoError(t, err)
	second, err := gen.Generate("Card", "Shows a card")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// notes are not shared between payloads
	first.Notes[0] = "mutated"
	third, err := gen.Generate("Card", "Shows a card")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", third.Notes[0])
}

func TestNewGeneratorErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing component template",
			fsys:    fstest.MapFS{templates.IndexTemplateFile: &fstest.MapFile{Data: []byte("x")}},
			wantErr: "failed to read " + templates.ComponentTemplateFile,
		},
		{
			name: "missing index template",
			fsys: fstest.MapFS{
				templates.ComponentTemplateFile: &fstest.MapFile{Data: []byte("{{.Name}}")},
			},
			wantErr: "failed to read " + templates.IndexTemplateFile,
		},
		{
			name: "unparsable template",
			fsys: fstest.MapFS{
				templates.ComponentTemplateFile: &fstest.MapFile{Data: []byte("{{.Name")},
				templates.IndexTemplateFile:     &fstest.MapFile{Data: []byte("x")},
			},
			wantErr: "failed to parse " + templates.ComponentTemplateFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateTemplateExecutionError(t *testing.T) {
	gen, err := NewGenerator(fstest.MapFS{
		templates.ComponentTemplateFile: &fstest.MapFile{Data: []byte("{{.Missing}}")},
		templates.IndexTemplateFile:     &fstest.MapFile{Data: []byte("x")},
	})
	require.NoError(t, err)

	_, err = gen.Generate("A", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render component file")
}
