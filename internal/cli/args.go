package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ParseToolArgs turns key=value pairs into tool arguments. Parameters the
// tool's input schema declares as strings are passed verbatim. Other values
// are typed: finite numbers and the literals true and false, everything else
// a string. A nil tool types every value.
func ParseToolArgs(pairs []string, tool *mcp.Tool) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", pair)
		}
		if schemaType(tool, key) == "string" {
			args[key] = value
			continue
		}
		args[key] = parseValue(value)
	}
	return args, nil
}

func schemaType(tool *mcp.Tool, key string) string {
	if tool == nil {
		return ""
	}
	prop, ok := tool.InputSchema.Properties[key].(map[string]interface{})
	if !ok {
		return ""
	}
	t, _ := prop["type"].(string)
	return t
}

func parseValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// FindTool returns the tool with the given name, or nil.
func FindTool(tools []mcp.Tool, name string) *mcp.Tool {
	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}
	return nil
}
