package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCaller struct {
	result string
	err    error
	name   string
	args   map[string]interface{}
}

func (s *stubCaller) CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	s.name = name
	s.args = args
	return s.result, s.err
}

const modelsJSON = `{"models":[
	{"display_name":"Claude","model_name":"claude-3","provider":"Anthropic"},
	{"display_name":"llama3","model_name":"llama3","provider":"Groq"}
],"total":2,"providers":2}`

const reportJSON = `{"flow_id":7,"node_id":"r","node_name":"Investment Report","status":"IDLE",
	"hint":"","connected_agent_ids":["valuation_agent"],
	"output":{"decisions":{"NVDA":{"action":"buy","quantity":10,"confidence":82.5}},"analyst_signals":{}}}`

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatJSON, f)

	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestExecute_Table_Models(t *testing.T) {
	var out bytes.Buffer
	caller := &stubCaller{result: modelsJSON}
	e := NewToolExecutor(caller, OutputFormatTable, &out)

	require.NoError(t, e.Execute(context.Background(), "list_models", map[string]interface{}{"format": "json"}))
	assert.Equal(t, "list_models", caller.name)

	text := out.String()
	assert.Contains(t, text, "PROVIDER")
	assert.Contains(t, text, "claude-3")
	assert.Contains(t, text, "Total:")
	assert.Less(t, strings.Index(text, "Anthropic"), strings.Index(text, "Groq"))
}

func TestExecute_Table_Report(t *testing.T) {
	var out bytes.Buffer
	e := NewToolExecutor(&stubCaller{result: reportJSON}, OutputFormatTable, &out)

	require.NoError(t, e.Execute(context.Background(), "report_status", nil))
	text := out.String()
	assert.Contains(t, text, "Investment Report")
	assert.Contains(t, text, "valuation_agent")
	assert.Contains(t, text, "NVDA")
	assert.Contains(t, text, "BUY")
	assert.Contains(t, text, "82.5%")
}

func TestExecute_YAML(t *testing.T) {
	var out bytes.Buffer
	e := NewToolExecutor(&stubCaller{result: `{"status":"IDLE","flow_id":3}`}, OutputFormatYAML, &out)

	require.NoError(t, e.Execute(context.Background(), "report_status", nil))
	assert.Contains(t, out.String(), "status: IDLE")
	assert.Contains(t, out.String(), "flow_id: 3")
}

func TestExecute_JSONPassthrough(t *testing.T) {
	var out bytes.Buffer
	e := NewToolExecutor(&stubCaller{result: modelsJSON}, OutputFormatJSON, &out)

	require.NoError(t, e.Execute(context.Background(), "list_models", nil))
	assert.Equal(t, modelsJSON+"\n", out.String())
}

func TestExecute_PlainText(t *testing.T) {
	var out bytes.Buffer
	e := NewToolExecutor(&stubCaller{result: "1 models from 1 providers"}, OutputFormatTable, &out)

	require.NoError(t, e.Execute(context.Background(), "list_models", nil))
	assert.Equal(t, "1 models from 1 providers\n", out.String())
}

func TestExecute_Error(t *testing.T) {
	e := NewToolExecutor(&stubCaller{err: errors.New("boom")}, OutputFormatTable, &bytes.Buffer{})
	err := e.Execute(context.Background(), "list_models", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list_models")
}

func TestFormat_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewToolExecutor(nil, OutputFormatTable, &out).Format("  "))
	assert.Equal(t, "No results\n", out.String())
}

func TestParseToolArgs(t *testing.T) {
	args, err := ParseToolArgs([]string{"flow_id=7", "node_id=report-1", "verbose=true", "name=t"}, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(7), args["flow_id"])
	assert.Equal(t, "report-1", args["node_id"])
	assert.Equal(t, true, args["verbose"])
	assert.Equal(t, "t", args["name"])

	_, err = ParseToolArgs([]string{"novalue"}, nil)
	assert.Error(t, err)
	_, err = ParseToolArgs([]string{"=x"}, nil)
	assert.Error(t, err)
}

func TestParseToolArgs_NonFiniteStayStrings(t *testing.T) {
	args, err := ParseToolArgs([]string{"a=NaN", "b=Inf", "c=-inf", "d=1.5"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "NaN", args["a"])
	assert.Equal(t, "Inf", args["b"])
	assert.Equal(t, "-inf", args["c"])
	assert.Equal(t, 1.5, args["d"])
}

func TestParseToolArgs_FollowsToolSchema(t *testing.T) {
	tool := mcp.NewTool("report_status",
		mcp.WithNumber("flow_id", mcp.Required()),
		mcp.WithString("node_id"),
	)

	args, err := ParseToolArgs([]string{"flow_id=7", "node_id=42", "extra=true"}, &tool)
	require.NoError(t, err)
	assert.Equal(t, float64(7), args["flow_id"])
	assert.Equal(t, "42", args["node_id"])
	assert.Equal(t, true, args["extra"])
}

func TestFindTool(t *testing.T) {
	tools := []mcp.Tool{mcp.NewTool("list_models"), mcp.NewTool("report_status")}
	require.NotNil(t, FindTool(tools, "report_status"))
	assert.Equal(t, "report_status", FindTool(tools, "report_status").Name)
	assert.Nil(t, FindTool(tools, "nope"))
}
