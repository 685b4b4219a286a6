package cmd

import (
	"fmt"

	"hedgeview/internal/app"

	"github.com/spf13/cobra"
)

var (
	uiNoTUI  bool
	uiFlowID int
	uiNodeID string
)

// uiCmd launches the interactive terminal UI.
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Start the interactive terminal UI",
	Long: `Starts the hedgeview terminal UI.

The left pane lists every cloud language model the backend offers, grouped
under their provider and sorted by provider name. The right pane shows the
investment report node of the selected flow: IN_PROGRESS while the flow or
any of its agents is running, IDLE otherwise. Press enter on the report pane
to open its output, r to reload the model list and h for all key bindings.

With --no-tui the model list and the report are printed once instead.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg := newAppConfig(uiNoTUI)
	cfg.FlowID = uiFlowID
	cfg.NodeID = uiNodeID

	application, err := app.NewApplication(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(commandContext(cmd), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().BoolVar(&uiNoTUI, "no-tui", false, "Print the model list and report once instead of starting the UI")
	uiCmd.Flags().IntVar(&uiFlowID, "flow-id", 0, "Flow whose report node is shown (overrides ui.flowId)")
	uiCmd.Flags().StringVar(&uiNodeID, "node-id", "", "Report node id inside the flow (overrides ui.nodeId)")
}
