package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/internal/mcpserver"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProviders struct {
	err error
}

func (s stubProviders) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []catalog.ModelProvider{
		{Name: "OpenAI", Models: []catalog.Model{{DisplayName: "GPT-4o", ModelName: "gpt-4o"}}},
	}, nil
}

func TestNewCLIClient(t *testing.T) {
	client := NewCLIClient("")
	assert.Equal(t, DefaultEndpoint, client.Endpoint())
	assert.Equal(t, 30*time.Second, client.timeout)

	endpoint := "http://localhost:9000/sse"
	assert.Equal(t, endpoint, NewCLIClient(endpoint).Endpoint())
}

func TestCLIClient_NotConnected(t *testing.T) {
	client := NewCLIClient("")

	_, err := client.CallTool(context.Background(), "list_models", nil)
	assert.ErrorContains(t, err, "not connected")

	_, err = client.ListTools(context.Background())
	assert.ErrorContains(t, err, "not connected")

	assert.NotPanics(t, func() {
		_ = client.Close()
	})
}

func TestCLIClient_Connect_InvalidEndpoint(t *testing.T) {
	client := NewCLIClient("http://127.0.0.1:1/sse")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := client.Connect(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func newConnectedClient(t *testing.T, deps mcpserver.Deps) *CLIClient {
	t.Helper()
	ts := server.NewTestServer(mcpserver.NewServer(deps, "test").MCPServer())
	t.Cleanup(ts.Close)

	client := NewCLIClient(ts.URL + "/sse")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCLIClient_AgainstServer(t *testing.T) {
	client := newConnectedClient(t, mcpserver.Deps{Providers: stubProviders{}})
	ctx := context.Background()

	tools, err := client.ListTools(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"list_models", "report_status"}, names)

	out, err := client.CallToolText(ctx, "list_models", map[string]interface{}{"format": "text"})
	require.NoError(t, err)
	assert.Contains(t, out, "1 models from 1 providers")
}

func TestCLIClient_ToolError(t *testing.T) {
	client := newConnectedClient(t, mcpserver.Deps{Providers: stubProviders{err: errors.New("refused")}})

	_, err := client.CallToolText(context.Background(), "list_models", nil)
	require.Error(t, err)
	assert.Equal(t, catalog.ConnectErrorMessage, err.Error())
}

func TestCLIClient_SessionOutlivesConnectContext(t *testing.T) {
	ts := server.NewTestServer(mcpserver.NewServer(mcpserver.Deps{Providers: stubProviders{}}, "test").MCPServer())
	t.Cleanup(ts.Close)

	client := NewCLIClient(ts.URL + "/sse")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() { _ = client.Close() })
	cancel()

	tools, err := client.ListTools(context.Background())
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}
