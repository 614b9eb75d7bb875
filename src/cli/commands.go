// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	mcpserver "github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var (
	// ErrResourcesDisabled is returned by the resources command when protocol.resources is off.
	ErrResourcesDisabled = errors.New("resources are disabled by configuration")
	// ErrMissingPrompt is returned by classify when no prompt words are given.
	ErrMissingPrompt = errors.New("a prompt is required")
)

// DispatcherFunc builds the dispatcher a command answers from. It is called
// when the command runs, after flags have been parsed.
type DispatcherFunc func() (*mcpserver.Dispatcher, error)

// Commands returns the offline subcommands.
//
// Parameters:
//   - newDispatcher: Factory invoked by each command at run time
//
// Returns:
//   - []*cobra.Command: guide, tools, resources, generate and classify
func Commands(newDispatcher DispatcherFunc) []*cobra.Command {
	return []*cobra.Command{
		newGuideCommand(newDispatcher),
		newToolsCommand(newDispatcher),
		newResourcesCommand(newDispatcher),
		newGenerateCommand(newDispatcher),
		newClassifyCommand(),
	}
}

func newGuideCommand(newDispatcher DispatcherFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Print the Chakra UI v3 guide served by gds_chakra_v3_guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Library().GuideDocument())
			return err
		},
	}
}

func newToolsCommand(newDispatcher DispatcherFunc) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools advertised by tools/list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), d.Tools())
			}

			rows := make([][]string, 0, len(d.Tools()))
			for _, tool := range d.Tools() {
				rows = append(rows, []string{
					tool.Name,
					strings.Join(tool.InputSchema.Required, ", "),
					tool.Description,
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"Name", "Required", "Description"}, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tools/list descriptors as JSON")
	return cmd
}

func newResourcesCommand(newDispatcher DispatcherFunc) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the resources advertised by resources/list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher()
			if err != nil {
				return err
			}
			if !d.ResourcesEnabled() {
				return ErrResourcesDisabled
			}

			infos := d.ResourceInfos()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, r := range infos {
				rows = append(rows, []string{r.URI, r.MIMEType, r.Name, r.Description})
			}
			return renderTable(cmd.OutOrStdout(), []string{"URI", "MIME Type", "Name", "Description"}, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resource metadata as JSON")
	return cmd
}

// newGenerateCommand mirrors gds_generate_component: both flags must hold
// non-blank text and the payload is printed as JSON.
func newGenerateCommand(newDispatcher DispatcherFunc) *cobra.Command {
	var name, purpose string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate component files the way gds_generate_component does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return errors.New("missing or invalid argument: --name")
			}
			if strings.TrimSpace(purpose) == "" {
				return errors.New("missing or invalid argument: --purpose")
			}

			d, err := newDispatcher()
			if err != nil {
				return err
			}
			payload, err := d.Generator().Generate(name, purpose)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", name, err)
			}
			return writeJSON(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "component name, e.g. LoginCard")
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the component does")
	return cmd
}

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify PROMPT...",
		Short: "Report whether a prompt reads as a login request (login or generic)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingPrompt
			}
			intent := gds.Classify(strings.Join(args, " "))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), intent)
			return err
		},
	}
}

// renderTable writes a markdown table.
//
// Parameters:
//   - w: Destination
//   - headers: Column titles
//   - rows: One slice per row, each as long as headers
//
// Returns:
//   - error: If rendering or writing fails
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := jsonx.MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
