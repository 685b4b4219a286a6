package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(caller *stubCaller) (*REPL, *bytes.Buffer) {
	var out bytes.Buffer
	tools := []mcp.Tool{
		mcp.NewTool("report_status", mcp.WithDescription("Report"), mcp.WithNumber("flow_id"), mcp.WithString("node_id")),
		mcp.NewTool("list_models", mcp.WithDescription("Models")),
	}
	return NewREPL(NewToolExecutor(caller, OutputFormatJSON, &out), tools, &out), &out
}

func TestREPL_ExecuteLine_CallsTool(t *testing.T) {
	caller := &stubCaller{result: `{"status":"IDLE"}`}
	r, out := newTestREPL(caller)

	require.NoError(t, r.ExecuteLine(context.Background(), "report_status flow_id=7 node_id=42"))
	assert.Equal(t, "report_status", caller.name)
	assert.Equal(t, float64(7), caller.args["flow_id"])
	assert.Equal(t, "42", caller.args["node_id"])
	assert.Contains(t, out.String(), `"status":"IDLE"`)
}

func TestREPL_ExecuteLine_Builtins(t *testing.T) {
	r, out := newTestREPL(&stubCaller{})
	ctx := context.Background()

	require.NoError(t, r.ExecuteLine(ctx, "   "))
	assert.Empty(t, out.String())

	require.NoError(t, r.ExecuteLine(ctx, "help"))
	assert.Contains(t, out.String(), "call a tool")

	out.Reset()
	require.NoError(t, r.ExecuteLine(ctx, "tools"))
	assert.Less(t, bytes.Index(out.Bytes(), []byte("list_models")), bytes.Index(out.Bytes(), []byte("report_status")))

	assert.ErrorIs(t, r.ExecuteLine(ctx, "quit"), errExit)
	assert.ErrorIs(t, r.ExecuteLine(ctx, "exit"), errExit)
}

func TestREPL_ExecuteLine_Errors(t *testing.T) {
	r, _ := newTestREPL(&stubCaller{})
	ctx := context.Background()

	assert.ErrorContains(t, r.ExecuteLine(ctx, "delete_everything"), "unknown tool")
	assert.ErrorContains(t, r.ExecuteLine(ctx, "report_status flow_id"), "key=value")
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput('a')
	assert.True(t, ok)
	_, ok = filterInput(26)
	assert.False(t, ok)
}
