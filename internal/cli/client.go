package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultEndpoint is where `hedgeview serve --transport sse` listens by default.
const DefaultEndpoint = "http://localhost:8091/sse"

// CLIClient provides a simplified MCP client for CLI commands
type CLIClient struct {
	endpoint string
	client   client.MCPClient
	timeout  time.Duration
}

// NewCLIClient creates a new CLI client for a running hedgeview MCP server.
// An empty endpoint selects DefaultEndpoint.
func NewCLIClient(endpoint string) *CLIClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &CLIClient{
		endpoint: endpoint,
		timeout:  30 * time.Second,
	}
}

// Endpoint returns the SSE endpoint the client connects to.
func (c *CLIClient) Endpoint() string {
	return c.endpoint
}

// Connect establishes the SSE session and performs the MCP handshake. The
// session outlives ctx, which only bounds the handshake; Close ends it.
func (c *CLIClient) Connect(ctx context.Context) error {
	sseClient, err := client.NewSSEMCPClient(c.endpoint)
	if err != nil {
		return fmt.Errorf("failed to create SSE client: %w", err)
	}

	if err := sseClient.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to start SSE client: %w", err)
	}
	c.client = sseClient

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}

	return nil
}

// ListTools returns the tools the server offers.
func (c *CLIClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return result.Tools, nil
}

// CallTool executes a tool and returns the result
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}

	return result, nil
}

// CallToolText executes a tool and returns its first text content. Tool
// errors are returned as Go errors carrying the tool's message.
func (c *CLIClient) CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	texts := resultTexts(result)
	if result.IsError {
		return "", fmt.Errorf("%s", strings.Join(texts, "\n"))
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// Close closes the connection
func (c *CLIClient) Close() error {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
	return nil
}

// initialize performs the MCP protocol handshake
func (c *CLIClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = "2024-11-05"
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "hedgeview-cli",
		Version: "1.0.0",
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func resultTexts(result *mcp.CallToolResult) []string {
	var texts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			texts = append(texts, textContent.Text)
		}
	}
	return texts
}
