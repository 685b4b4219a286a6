package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hedgeview/internal/backend"
	"hedgeview/internal/catalog"
	"hedgeview/internal/config"
	"hedgeview/internal/flow"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProviders struct {
	providers []catalog.ModelProvider
	err       error
}

func (s stubProviders) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	return s.providers, s.err
}

type stubRuns struct {
	active *backend.FlowRun
	latest *backend.FlowRun
	err    error
	flowID int
}

func (s *stubRuns) ActiveFlowRun(ctx context.Context, flowID int) (*backend.FlowRun, error) {
	s.flowID = flowID
	return s.active, s.err
}

func (s *stubRuns) LatestFlowRun(ctx context.Context, flowID int) (*backend.FlowRun, error) {
	return s.latest, s.err
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func sampleProviders() []catalog.ModelProvider {
	return []catalog.ModelProvider{
		{Name: "OpenAI", Models: []catalog.Model{{DisplayName: "GPT-4o", ModelName: "gpt-4o"}}},
		{Name: "Anthropic", Models: []catalog.Model{{DisplayName: "claude-haiku", ModelName: "claude-haiku"}}},
	}
}

func TestTools(t *testing.T) {
	names := map[string]bool{}
	for _, tool := range Tools() {
		names[tool.Name] = true
	}
	assert.True(t, names["list_models"])
	assert.True(t, names["report_status"])

	s := NewServer(Deps{}, "dev")
	assert.NotNil(t, s.MCPServer())
}

func TestHandleListModels_Text(t *testing.T) {
	s := NewServer(Deps{Providers: stubProviders{providers: sampleProviders()}}, "dev")

	result, err := s.HandleListModels(context.Background(), callRequest("list_models", map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "2 models from 2 providers")
	assert.Contains(t, text, "GPT-4o (gpt-4o)")
	assert.NotContains(t, text, "(claude-haiku)")
	assert.Less(t, indexOf(text, "Anthropic"), indexOf(text, "OpenAI"))
}

func TestHandleListModels_JSON(t *testing.T) {
	s := NewServer(Deps{Providers: stubProviders{providers: sampleProviders()}}, "dev")

	result, err := s.HandleListModels(context.Background(), callRequest("list_models", map[string]interface{}{"format": "json"}))
	require.NoError(t, err)

	var decoded struct {
		Models []catalog.FlattenedModel `json:"models"`
		Total  int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	assert.Equal(t, 2, decoded.Total)
	assert.Equal(t, "Anthropic", decoded.Models[0].Provider)
}

func TestHandleListModels_Error(t *testing.T) {
	s := NewServer(Deps{Providers: stubProviders{err: errors.New("refused")}}, "dev")

	result, err := s.HandleListModels(context.Background(), callRequest("list_models", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, catalog.ConnectErrorMessage, resultText(t, result))

	result, err = NewServer(Deps{}, "dev").HandleListModels(context.Background(), callRequest("list_models", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleReportStatus(t *testing.T) {
	runs := &stubRuns{
		active: &backend.FlowRun{ID: 5, FlowID: 12, Status: backend.RunStatusInProgress},
		latest: &backend.FlowRun{ID: 5, FlowID: 12, Status: backend.RunStatusInProgress},
	}
	s := NewServer(Deps{Runs: runs, NodeID: "report", NodeName: "Weekly Report"}, "dev")

	result, err := s.HandleReportStatus(context.Background(), callRequest("report_status", map[string]interface{}{"flow_id": float64(12)}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, 12, runs.flowID)

	var report flow.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, flow.StatusInProgress, report.Status)
	assert.Equal(t, "Weekly Report", report.NodeName)
	assert.Equal(t, "report", report.NodeID)
	assert.Equal(t, "Processing...", report.Hint)
	assert.Nil(t, report.Output)
}

func TestHandleReportStatus_NumericNodeID(t *testing.T) {
	s := NewServer(Deps{Runs: &stubRuns{}, NodeID: "report"}, "dev")

	result, err := s.HandleReportStatus(context.Background(), callRequest("report_status", map[string]interface{}{
		"flow_id": float64(3),
		"node_id": float64(42),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var report flow.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, "42", report.NodeID)
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{"s": "report-1", "f": float64(42), "i": 7, "b": true}
	assert.Equal(t, "report-1", stringArg(args, "s", "def"))
	assert.Equal(t, "42", stringArg(args, "f", "def"))
	assert.Equal(t, "7", stringArg(args, "i", "def"))
	assert.Equal(t, "def", stringArg(args, "b", "def"))
	assert.Equal(t, "def", stringArg(args, "missing", "def"))
}

func TestHandleReportStatus_MissingFlowID(t *testing.T) {
	s := NewServer(Deps{Runs: &stubRuns{}}, "dev")
	result, err := s.HandleReportStatus(context.Background(), callRequest("report_status", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleReportStatus_BackendError(t *testing.T) {
	s := NewServer(Deps{Runs: &stubRuns{err: errors.New("down")}}, "dev")
	result, err := s.HandleReportStatus(context.Background(), callRequest("report_status", map[string]interface{}{"flow_id": 1}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "down")
}

func TestServe_UnknownTransport(t *testing.T) {
	s := NewServer(Deps{}, "dev")
	err := s.Serve(context.Background(), config.MCPConfig{Transport: "carrier-pigeon"}, nil, nil)
	assert.Error(t, err)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

type countingProviders struct {
	calls int
	err   error
}

func (c *countingProviders) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return sampleProviders(), nil
}

func TestHandleListModels_Cached(t *testing.T) {
	lister := &countingProviders{}
	s := NewServer(Deps{Providers: lister, CacheTTL: time.Minute}, "dev")

	for i := 0; i < 3; i++ {
		result, err := s.HandleListModels(context.Background(), callRequest("list_models", nil))
		require.NoError(t, err)
		assert.False(t, result.IsError)
	}
	assert.Equal(t, 1, lister.calls)
}

func TestHandleListModels_ErrorsNotCached(t *testing.T) {
	lister := &countingProviders{err: errors.New("refused")}
	s := NewServer(Deps{Providers: lister, CacheTTL: time.Minute}, "dev")

	for i := 0; i < 2; i++ {
		result, err := s.HandleListModels(context.Background(), callRequest("list_models", nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	}
	assert.Equal(t, 2, lister.calls)
}

func TestHandleListModels_NoCacheByDefault(t *testing.T) {
	lister := &countingProviders{}
	s := NewServer(Deps{Providers: lister}, "dev")

	for i := 0; i < 2; i++ {
		_, err := s.HandleListModels(context.Background(), callRequest("list_models", nil))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, lister.calls)
}
