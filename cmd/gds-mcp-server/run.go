// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/cli"
	mcpserver "github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	verpkg "github.com/H0llyW00dzZ/gds-mcp-server/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	framework := mcpserver.NewCLIFramework("", mcpserver.ServerDependencies{
		Embed:     templates.MagicEmbed,
		Version:   version,
		Tools:     mcpserver.DefaultTools(),
		Resources: mcpserver.DefaultResources(),
	})
	framework.SetLogOutput(stderr)

	rootCmd, err := framework.BuildRootCommand()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	rootCmd.AddCommand(cli.Commands(framework.Dispatcher)...)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
