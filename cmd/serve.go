package cmd

import (
	"fmt"

	"hedgeview/internal/app"

	"github.com/spf13/cobra"
)

var (
	serveTransport string
	serveHost      string
	servePort      int
)

// serveCmd exposes hedgeview's data as MCP tools.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the model catalog and report status as MCP tools",
	Long: `Starts an MCP server with two tools:

  list_models     the flattened model list, as text or JSON
  report_status   status, connected agents and output of a flow's report node

Transports:
  stdio (default)  for AI assistants that launch hedgeview themselves
  sse              an HTTP server on mcp.host:mcp.port

Logs go to stderr so they never mix with the stdio protocol stream.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := newAppConfig(true)
	cfg.MCPTransport = serveTransport
	cfg.MCPHost = serveHost
	cfg.MCPPort = servePort

	application, err := app.NewApplication(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.ServeMCP(commandContext(cmd), application.Config(), application.Services(), rootCmd.Version, cmd.InOrStdin(), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "MCP transport: stdio or sse (overrides mcp.transport)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host for the SSE transport (overrides mcp.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port for the SSE transport (overrides mcp.port)")
}
