package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", s)
	}
}

// ToolCaller is the part of CLIClient the executor needs.
type ToolCaller interface {
	CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error)
}

// ToolExecutor calls a tool and formats its output
type ToolExecutor struct {
	client ToolCaller
	format OutputFormat
	out    io.Writer
}

// NewToolExecutor creates a new tool executor writing to out.
func NewToolExecutor(client ToolCaller, format OutputFormat, out io.Writer) *ToolExecutor {
	return &ToolExecutor{
		client: client,
		format: format,
		out:    out,
	}
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	result, err := e.client.CallToolText(ctx, toolName, arguments)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}
	return e.Format(result)
}

// Format writes a tool's text result in the executor's format. Results that
// are not JSON are printed as they are.
func (e *ToolExecutor) Format(result string) error {
	if strings.TrimSpace(result) == "" {
		fmt.Fprintln(e.out, "No results")
		return nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		fmt.Fprintln(e.out, result)
		return nil
	}

	switch e.format {
	case OutputFormatJSON:
		fmt.Fprintln(e.out, result)
		return nil
	case OutputFormatYAML:
		return e.outputYAML(data)
	case OutputFormatTable, "":
		return e.outputTable(data)
	default:
		return fmt.Errorf("unsupported output format: %s", e.format)
	}
}

// outputYAML converts JSON data to YAML and prints it
func (e *ToolExecutor) outputYAML(data interface{}) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = e.out.Write(yamlData)
	return err
}

func (e *ToolExecutor) outputTable(data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		if models, ok := d["models"].([]interface{}); ok {
			e.modelsTable(models)
			if total, ok := d["total"]; ok {
				fmt.Fprintf(e.out, "\n%s %v models\n", text.FgHiBlue.Sprint("Total:"), total)
			}
			return nil
		}
		if _, ok := d["status"]; ok {
			e.reportTable(d)
			return nil
		}
		e.keyValueTable(d)
		return nil
	case []interface{}:
		for _, item := range d {
			fmt.Fprintln(e.out, item)
		}
		return nil
	default:
		fmt.Fprintln(e.out, d)
		return nil
	}
}

func (e *ToolExecutor) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(e.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(c)
	}
	return row
}

// modelsTable renders the flattened model list. The model name column is
// blank when it equals the display name.
func (e *ToolExecutor) modelsTable(models []interface{}) {
	if len(models) == 0 {
		fmt.Fprintln(e.out, text.FgYellow.Sprint("No models available"))
		return
	}

	t := e.newTable()
	t.AppendHeader(header("PROVIDER", "MODEL", "MODEL NAME"))
	for _, item := range models {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		display := stringField(m, "display_name")
		name := stringField(m, "model_name")
		if name == display {
			name = ""
		}
		t.AppendRow(table.Row{stringField(m, "provider"), display, name})
	}
	t.Render()
}

// reportTable renders a report_status result: the node summary, then the
// decisions when output is present.
func (e *ToolExecutor) reportTable(report map[string]interface{}) {
	t := e.newTable()
	t.AppendHeader(header("PROPERTY", "VALUE"))
	t.AppendRow(table.Row{"node", stringField(report, "node_name")})
	t.AppendRow(table.Row{"flow", report["flow_id"]})
	t.AppendRow(table.Row{"status", formatStatus(stringField(report, "status"))})
	t.AppendRow(table.Row{"hint", stringField(report, "hint")})
	t.AppendRow(table.Row{"agents", formatList(report["connected_agent_ids"])})
	t.Render()

	output, ok := report["output"].(map[string]interface{})
	if !ok {
		return
	}
	decisions, ok := output["decisions"].(map[string]interface{})
	if !ok || len(decisions) == 0 {
		return
	}

	tickers := make([]string, 0, len(decisions))
	for ticker := range decisions {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	dt := e.newTable()
	dt.AppendHeader(header("TICKER", "ACTION", "QUANTITY", "CONFIDENCE"))
	for _, ticker := range tickers {
		d, _ := decisions[ticker].(map[string]interface{})
		dt.AppendRow(table.Row{
			ticker,
			formatAction(stringField(d, "action")),
			d["quantity"],
			formatPercent(d["confidence"]),
		})
	}
	fmt.Fprintln(e.out)
	dt.Render()
}

// keyValueTable formats an object as sorted key-value pairs
func (e *ToolExecutor) keyValueTable(data map[string]interface{}) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := e.newTable()
	t.AppendHeader(header("PROPERTY", "VALUE"))
	for _, key := range keys {
		t.AppendRow(table.Row{text.FgYellow.Sprint(key), formatCell(data[key])})
	}
	t.Render()
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func formatStatus(status string) string {
	switch status {
	case "IN_PROGRESS":
		return text.FgYellow.Sprint("⏳ " + status)
	case "IDLE":
		return text.FgHiBlack.Sprint(status)
	default:
		return status
	}
}

func formatAction(action string) string {
	upper := strings.ToUpper(action)
	switch strings.ToLower(action) {
	case "buy", "cover":
		return text.FgGreen.Sprint(upper)
	case "sell", "short":
		return text.FgRed.Sprint(upper)
	default:
		return text.FgYellow.Sprint(upper)
	}
}

func formatPercent(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f%%", f)
	}
	return "-"
}

func formatList(v interface{}) string {
	items, ok := v.([]interface{})
	if !ok || len(items) == 0 {
		return text.FgHiBlack.Sprint("none")
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ", ")
}

func formatCell(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return text.FgHiBlack.Sprint("-")
	case []interface{}:
		return formatList(val)
	case map[string]interface{}:
		return text.FgHiBlack.Sprintf("[%d fields]", len(val))
	default:
		return val
	}
}
