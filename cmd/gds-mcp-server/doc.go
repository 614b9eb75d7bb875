// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// gds-mcp-server is a Model Context Protocol (MCP) server that gives AI
// assistants the GDS flavour of Chakra UI v3 over HTTP JSON-RPC.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/gds-mcp-server/cmd/gds-mcp-server@latest
//
// # Usage
//
//	gds-mcp-server [FLAGS]
//	gds-mcp-server [COMMAND] [FLAGS]
//
// # Flags
//
//	--config        Path to server configuration file (JSON or YAML)
//	--port          Listen port, overriding the config file and PORT
//	--instructions  Print the instructions sent to MCP clients
//	--help          Show help information
//	--version       Show version information
//
// # Commands
//
//	guide      Print the Chakra UI v3 guide
//	tools      List the MCP tools (markdown table or --json)
//	resources  List the MCP resources (markdown table or --json)
//	generate   Generate component files with --name and --purpose
//	classify   Report whether a prompt is a login request
//
// # Environment Variables
//
//	PORT                 Listen port (default 10000)
//	GDS_MCP_CONFIG_FILE  Path to configuration file (alternative to --config flag)
//
// # HTTP Endpoints
//
//	POST /mcp                  JSON-RPC 2.0 endpoint
//	GET  /mcp                  Server description
//	GET  /health, GET /        Liveness check answering "ok"
//	GET  /mcp/guide            Chakra UI v3 guide
//	GET  /mcp/tools            tools/list result
//	GET  /mcp/snippet/login    LoginCard snippet
//	GET  /mcp/generate?prompt= Login snippet or generic instructions for a prompt
//	GET  /mcp/tokens           Semantic token catalog
//	GET  /mcp/components       Component rename table
//	GET  /mcp/platform         Platform packages
//
// # MCP Tools
//
//   - gds_generate_component: Generate a component file and its index re-export
//   - gds_chakra_v3_guide: Return the Chakra UI v3 naming rules
//   - gds_snippet_login_card: Return a production-ready LoginCard
//
// # MCP Resources
//
//   - gds://guide/chakra-v3: Chakra UI v3 guide
//   - gds://snippet/login-card: LoginCard source
//   - gds://tokens: Semantic tokens
//   - gds://components: Component renames
//   - gds://platform: Platform packages
//
// # Examples
//
// Start the server on port 8080:
//
//	PORT=8080 gds-mcp-server
//
// Generate a component without starting the server:
//
//	gds-mcp-server generate --name Hero --purpose "Landing banner"
package main
