// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is returned when os.Args carries no usable program name.
const DefaultExecutableName = "gds-mcp-server"

// ExecutableName returns the running binary's name without directory or ".exe" suffix.
//
// Paths written with a foreign separator (a Windows path seen on Unix, or the
// reverse) are split manually so the last path component still wins.
func ExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return DefaultExecutableName
	}

	name := filepath.Base(os.Args[0])
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return DefaultExecutableName
	}
	return name
}
