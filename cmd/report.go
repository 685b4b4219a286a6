package cmd

import (
	"fmt"

	"hedgeview/internal/app"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		output string
		flowID int
		nodeID string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the investment report of a flow",
		Long: `Reads the active and latest run of a flow once and prints the report
node's status, its connected agents and, when the latest run completed, the
trading decisions and analyst signals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			cfg := newAppConfig(true)
			cfg.FlowID = flowID
			cfg.NodeID = nodeID
			application, err := app.NewApplication(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ui := application.Config().HedgeviewConfig.UI
			if ui.FlowID <= 0 {
				return fmt.Errorf("no flow selected: pass --flow-id or set ui.flowId")
			}
			return app.PrintReport(commandContext(cmd), application.Services(), cmd.OutOrStdout(), ui.FlowID, ui.NodeID, ui.NodeName, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", app.FormatText, "Output format: text or json")
	cmd.Flags().IntVar(&flowID, "flow-id", 0, "Flow to report on (overrides ui.flowId)")
	cmd.Flags().StringVar(&nodeID, "node-id", "", "Report node id inside the flow (overrides ui.nodeId)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newReportCmd())
}
