// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/logger"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/mcp-server/templates"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliHelpData holds the data used to populate the CLI help template.
//
// Fields:
//   - ExeName: The name of the executable binary for command examples
//   - InstructionsFlagName: The formatted instructions flag name (e.g., "--instructions")
//   - ConfigFlagName: The formatted config flag name (e.g., "--config")
//   - HelpFlagName: The formatted help flag name (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates the Cobra CLI with the HTTP server.
//
// Running the root command without arguments starts the server. The
// --instructions flag prints the text sent to clients in the initialize
// result, similar to [gopls]. Offline subcommands obtain a dispatcher through
// [CLIFramework.Dispatcher] so they answer exactly like the server would.
//
// [gopls]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile   string
	port         int
	embed        templates.EmbedFS
	version      string
	tools        []ToolDefinition
	resources    []ResourceDefinition
	instructions string
	logOutput    io.Writer
}

// NewCLIFramework creates a CLI framework.
//
// Parameters:
//   - configFile: Path to the configuration file; empty falls back to GDS_MCP_CONFIG_FILE
//   - deps: Embedded filesystem, version, registries and optional instructions
//
// Returns:
//   - *CLIFramework: Ready for [CLIFramework.BuildRootCommand]
//
// Configuration loading is deferred until a command runs so the --config and
// --port flags can take effect.
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile:   configFile,
		embed:        deps.Embed,
		version:      deps.Version,
		tools:        deps.Tools,
		resources:    deps.Resources,
		instructions: deps.Instructions,
		logOutput:    os.Stderr,
	}
}

// SetLogOutput redirects server logs, which go to stderr by default.
func (cf *CLIFramework) SetLogOutput(w io.Writer) { cf.logOutput = w }

// BuildRootCommand creates the root command.
//
// Command behavior:
//   - With --instructions: prints the client instructions and exits
//   - Without arguments: starts the HTTP server until SIGINT or SIGTERM
//   - With a subcommand: runs it
//
// Returns:
//   - *cobra.Command: The root command
//   - error: If the embedded filesystem is missing or the help template is malformed
func (cf *CLIFramework) BuildRootCommand() (*cobra.Command, error) {
	if cf.embed == nil {
		return nil, ErrMissingLibrary
	}

	exeName := posix.ExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "GDS MCP server: Chakra UI v3 guidance and component scaffolds over JSON-RPC",
		Version:       cf.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Registered early so its name is available to the help template.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	showInstructions := new(bool)
	rootCmd.PersistentFlags().BoolVar(showInstructions, "instructions", false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to the server configuration file (JSON or YAML)")
	rootCmd.PersistentFlags().IntVar(&cf.port, "port", 0, "listen port (overrides the config file and PORT)")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)
	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		return nil, err
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = cf.createRootCommandRunE(showInstructions, exeName)
	return rootCmd, nil
}

// loadAndExecuteCLIHelpTemplate renders cli_help.md and splits it into the
// Long description and the Examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelpFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	data := cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the "## Examples" line.
//
// Parameters:
//   - templateResult: The rendered template output
//
// Returns:
//   - longDesc: Everything before the "## Examples" line, trimmed
//   - examples: Everything after it, trimmed
//   - err: If the marker is missing
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"
	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", errors.New("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	return strings.TrimSpace(templateResult[:lineStart]), strings.TrimSpace(templateResult[lineEnd:]), nil
}

// extractFlagNames returns the "--" forms of the instructions, config and help flags.
// Defaults are returned for flags that are not registered.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// LoadConfig loads the configuration named by --config (or GDS_MCP_CONFIG_FILE)
// and applies --port when it was given.
func (cf *CLIFramework) LoadConfig() (*Config, error) {
	cfg, err := LoadConfig(cf.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cf.port != 0 {
		cfg.Server.Port = cf.port
		if err := cfg.normalize(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Dispatcher builds a dispatcher from the current configuration with logging disabled.
// Subcommands use it to answer without starting the server.
func (cf *CLIFramework) Dispatcher() (*Dispatcher, error) {
	cfg, err := cf.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cf.buildDispatcher(cfg, zap.NewNop())
}

func (cf *CLIFramework) buildDispatcher(cfg *Config, log *zap.Logger) (*Dispatcher, error) {
	d, err := NewServerBuilder().
		WithConfig(cfg).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithLogger(log).
		WithTools(cf.tools...).
		WithResources(cf.resources...).
		WithInstructions(cf.instructions).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}
	return d, nil
}

// statusLogger returns the logger for lifecycle messages: plain lines for
// log.format "console", JSON otherwise.
func (cf *CLIFramework) statusLogger(cfg *Config) logger.Logger {
	if strings.EqualFold(cfg.Log.Format, "console") {
		l := logger.NewCLILogger()
		l.SetOutput(cf.logOutput)
		return l
	}
	return logger.NewJSONLogger(cf.logOutput, false)
}

// startServer starts the HTTP server and blocks until ctx is cancelled or a
// termination signal arrives.
//
// Returns:
//   - nil: When the server shuts down gracefully
//   - error: Configuration, build, listen or shutdown errors
func (cf *CLIFramework) startServer(ctx context.Context) error {
	cfg, err := cf.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cf.logOutput})
	defer func() { _ = log.Sync() }()

	d, err := cf.buildDispatcher(cfg, log)
	if err != nil {
		return err
	}

	status := cf.statusLogger(cfg)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	status.Printf("GDS MCP server %s listening on %s", d.Version(), cfg.Addr())
	err = NewServer(d, cfg, log).Serve(ctx)
	status.Println("GDS MCP server stopped.")
	return err
}

// printInstructions writes the client instructions to w.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	d, err := cf.Dispatcher()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, d.Instructions())
	return err
}

// createRootCommandRunE returns the root command's RunE.
//
// Parameters:
//   - showInstructions: Bound to the --instructions flag; read when the command runs
//   - exeName: The executable name for error messages
func (cf *CLIFramework) createRootCommandRunE(showInstructions *bool, exeName string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if *showInstructions {
			return cf.printInstructions(cmd.OutOrStdout())
		}
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), exeName)
		}
		return cf.startServer(cmd.Context())
	}
}
