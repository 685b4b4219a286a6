// Package mcpserver exposes hedgeview's read-only views as MCP tools.
//
// Two tools are registered:
//
//   - list_models: the flattened cloud model catalog, sorted by provider
//   - report_status: status, hint and output of the investment report node
//     for a given flow
//
// The server speaks either stdio or SSE, selected by the mcp.transport
// configuration value.
package mcpserver
