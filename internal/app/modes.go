package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"hedgeview/internal/catalog"
	"hedgeview/internal/flow"
	"hedgeview/internal/mcpserver"
	"hedgeview/internal/tui/controller"
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/view"
	"hedgeview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Output formats accepted by the print helpers.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// reportWidth is the table width used when printing output outside the TUI.
const reportWidth = 100

// runCLIMode prints the model list and, when a flow is selected, the report
// once, then returns.
func runCLIMode(ctx context.Context, cfg *Config, services *Services, out io.Writer) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	if err := PrintModels(ctx, services, out, FormatText); err != nil {
		return err
	}

	flowID := cfg.HedgeviewConfig.UI.FlowID
	if flowID <= 0 {
		logging.Debug("CLI", "No flow selected, skipping report")
		return nil
	}
	fmt.Fprintln(out)
	return PrintReport(ctx, services, out, flowID, cfg.HedgeviewConfig.UI.NodeID, cfg.HedgeviewConfig.UI.NodeName, FormatText)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(cfg.HedgeviewConfig.UI.IsDarkMode())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(cfg.LogLevel())
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(model.TUIConfig{
		DebugMode:    cfg.Debug,
		BackendURL:   services.Backend.BaseURL(),
		Providers:    services.Backend,
		Syncer:       services.Syncer,
		Node:         services.Node,
		PollInterval: cfg.HedgeviewConfig.UI.EffectivePollInterval(),
	}, logChan, tea.WithContext(ctx))

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

// PrintModels fetches the catalog once and writes it in the given format.
// Fetch failures are reported with the same message the list view shows.
func PrintModels(ctx context.Context, services *Services, out io.Writer, format string) error {
	providers, err := services.Backend.ListProviders(ctx)
	if err != nil {
		logging.Error("CLI", err, "Failed to fetch language models")
		return errors.New(catalog.ErrorMessage(err))
	}
	return writeModels(out, format, catalog.Flatten(providers), catalog.FormatList(providers))
}

// PrintAllModels writes the backend's full model list, which also carries
// locally served models such as Ollama's.
func PrintAllModels(ctx context.Context, services *Services, out io.Writer, format string) error {
	models, err := services.Backend.ListModels(ctx)
	if err != nil {
		logging.Error("CLI", err, "Failed to fetch language models")
		return errors.New(catalog.ErrorMessage(err))
	}
	catalog.SortByProvider(models)
	return writeModels(out, format, models, catalog.FormatModels(models))
}

func writeModels(out io.Writer, format string, models []catalog.FlattenedModel, text string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(models)
	case FormatText, "":
		_, err := fmt.Fprintln(out, text)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// PrintReport syncs the report node of flowID once and writes its status and
// output.
func PrintReport(ctx context.Context, services *Services, out io.Writer, flowID int, nodeID, nodeName, format string) error {
	report, err := flow.BuildReport(ctx, services.Backend, flowID, flow.NodeProps{ID: nodeID, Name: nodeName})
	if err != nil {
		return fmt.Errorf("failed to read report of flow %d: %w", flowID, err)
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatText, "":
		_, err := fmt.Fprintln(out, FormatReport(report))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// FormatReport renders a report the way the output dialog does, headed by the
// node name and status.
func FormatReport(r flow.Report) string {
	header := fmt.Sprintf("%s [%s] flow #%d", r.NodeName, r.Status, r.FlowID)
	body := view.RenderOutputContent(flow.DialogProps{
		OutputNodeData:    r.Output,
		ConnectedAgentIDs: r.ConnectedAgentIDs,
	}, reportWidth)
	return header + "\n" + r.Hint + "\n\n" + body
}

// ServeMCP exposes the services as MCP tools until ctx is done.
func ServeMCP(ctx context.Context, cfg *Config, services *Services, version string, stdin io.Reader, stdout io.Writer) error {
	hc := cfg.HedgeviewConfig
	s := mcpserver.NewServer(mcpserver.Deps{
		Providers: services.Backend,
		Runs:      services.Backend,
		NodeID:    hc.UI.NodeID,
		NodeName:  hc.UI.NodeName,
		CacheTTL:  hc.MCP.EffectiveCacheTTL(),
	}, version)
	return s.Serve(ctx, hc.MCP, stdin, stdout)
}
