package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/internal/config"
	"hedgeview/internal/flow"
	"hedgeview/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// ProviderLister loads the provider catalog; *backend.Client satisfies it.
type ProviderLister interface {
	ListProviders(ctx context.Context) ([]catalog.ModelProvider, error)
}

// Deps are the backends the tools read from.
type Deps struct {
	Providers ProviderLister
	Runs      flow.RunSource
	NodeID    string
	NodeName  string

	// CacheTTL enables the provider cache when positive.
	CacheTTL time.Duration
}

// Server wraps an MCP server with hedgeview's tools registered.
type Server struct {
	deps Deps
	mcp  *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(deps Deps, version string) *Server {
	if deps.Providers != nil && deps.CacheTTL > 0 {
		deps.Providers = newCachedLister(deps.Providers, deps.CacheTTL)
	}
	s := &Server{
		deps: deps,
		mcp: server.NewMCPServer(
			"hedgeview",
			version,
			server.WithToolCapabilities(true),
		),
	}
	s.mcp.AddTool(listModelsTool(), s.HandleListModels)
	s.mcp.AddTool(reportStatusTool(), s.HandleReportStatus)
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Tools lists the tool definitions this server registers.
func Tools() []mcp.Tool {
	return []mcp.Tool{listModelsTool(), reportStatusTool()}
}

func listModelsTool() mcp.Tool {
	return mcp.NewTool("list_models",
		mcp.WithDescription("List the cloud language models of every provider, sorted by provider name"),
		mcp.WithString("format",
			mcp.Description("Output format: text (default) or json"),
			mcp.Enum("text", "json"),
		),
	)
}

func reportStatusTool() mcp.Tool {
	return mcp.NewTool("report_status",
		mcp.WithDescription("Get the investment report status and output of a flow"),
		mcp.WithNumber("flow_id",
			mcp.Required(),
			mcp.Description("ID of the flow"),
		),
		mcp.WithString("node_id",
			mcp.Description("ID of the report node inside the flow"),
		),
	)
}

// HandleListModels handles the list_models tool call
func (s *Server) HandleListModels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.deps.Providers == nil {
		return mcp.NewToolResultError("no backend configured"), nil
	}
	providers, err := s.deps.Providers.ListProviders(ctx)
	if err != nil {
		logging.Error(subsystem, err, "list_models failed")
		return mcp.NewToolResultError(catalog.ErrorMessage(err)), nil
	}
	models := catalog.Flatten(providers)

	if req.GetString("format", "text") == "json" {
		resultJSON, err := json.MarshalIndent(map[string]interface{}{
			"models":    models,
			"total":     len(models),
			"providers": len(providers),
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode models: %w", err)
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}

	return mcp.NewToolResultText(catalog.FormatList(providers)), nil
}

// HandleReportStatus handles the report_status tool call
func (s *Server) HandleReportStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	flowID, ok := numberArg(req.GetArguments(), "flow_id")
	if !ok {
		return mcp.NewToolResultError("flow_id is required"), nil
	}
	if s.deps.Runs == nil {
		return mcp.NewToolResultError("no backend configured"), nil
	}

	props := flow.NodeProps{
		ID:   stringArg(req.GetArguments(), "node_id", s.deps.NodeID),
		Name: s.deps.NodeName,
	}
	report, err := flow.BuildReport(ctx, s.deps.Runs, int(flowID), props)
	if err != nil {
		logging.Error(subsystem, err, "report_status failed for flow %d", int(flowID))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get report status: %v", err)), nil
	}

	resultJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// numberArg reads a numeric argument. JSON numbers decode as float64 but
// in-process callers may pass ints.
func numberArg(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// stringArg reads an identifier argument. Clients that type numeric-looking
// ids send them as JSON numbers, which are rendered back without exponent.
func stringArg(args map[string]interface{}, key, def string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return def
	}
}

// Serve runs the server on the configured transport until ctx is done.
func (s *Server) Serve(ctx context.Context, cfg config.MCPConfig, stdin io.Reader, stdout io.Writer) error {
	switch cfg.Transport {
	case config.MCPTransportSSE:
		return s.serveSSE(ctx, cfg)
	case config.MCPTransportStdio, "":
		logging.Info(subsystem, "Serving MCP over stdio")
		err := server.NewStdioServer(s.mcp).Listen(ctx, stdin, stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown MCP transport %q", cfg.Transport)
	}
}

func (s *Server) serveSSE(ctx context.Context, cfg config.MCPConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	sseServer := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Serving MCP over SSE on %s", addr)
		errCh <- sseServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sse server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown sse server: %w", err)
		}
		return nil
	}
}
