// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

// Embedded file names.
const (
	GuideFile               = "chakra-v3-guide.md"
	LoginCardFile           = "login-card.tsx"
	ComponentTemplateFile   = "component.tsx.tmpl"
	IndexTemplateFile       = "index.ts.tmpl"
	GenericInstructionsFile = "generic-instructions.md"
	InstructionsFile        = "instructions.md"
	CLIHelpFile             = "cli_help.md"
	CatalogFile             = "catalog.yaml"
)

//go:embed *.md *.tsx *.tmpl *.yaml
var embeddedFS embed.FS

// EmbedFS defines the interface for accessing embedded template files.
// It abstracts the [embed.FS] type so callers can swap in a test filesystem.
//
// Implementations must be safe for concurrent reads.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)
	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

type embedFS struct{ fs embed.FS }

func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// MagicEmbed is the embedded filesystem holding every template the server serves.
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
