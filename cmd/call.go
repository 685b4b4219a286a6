package cmd

import (
	"fmt"

	"hedgeview/internal/cli"

	"github.com/spf13/cobra"
)

func newCallCmd() *cobra.Command {
	var (
		endpoint string
		output   string
		list     bool
		repl     bool
	)

	cmd := &cobra.Command{
		Use:   "call [tool] [key=value...]",
		Short: "Call a tool on a running hedgeview MCP server",
		Long: `Connects to a hedgeview MCP server started with 'hedgeview serve --transport sse'
and calls one of its tools. Arguments are given as key=value pairs.

Examples:
  hedgeview call --list
  hedgeview call list_models format=json
  hedgeview call report_status flow_id=7 -o yaml
  hedgeview call --repl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			if !list && !repl && len(args) == 0 {
				return fmt.Errorf("tool name required (or use --list or --repl)")
			}

			ctx := commandContext(cmd)
			client := cli.NewCLIClient(endpoint)
			if err := client.Connect(ctx); err != nil {
				return fmt.Errorf("failed to connect to %s: %w", client.Endpoint(), err)
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			executor := cli.NewToolExecutor(client, format, out)
			tools, err := client.ListTools(ctx)
			if err != nil {
				return err
			}
			if repl {
				return cli.NewREPL(executor, tools, out).Run(ctx)
			}
			if list {
				for _, tool := range tools {
					fmt.Fprintf(out, "%-16s %s\n", tool.Name, tool.Description)
				}
				return nil
			}

			toolArgs, err := cli.ParseToolArgs(args[1:], cli.FindTool(tools, args[0]))
			if err != nil {
				return err
			}
			return executor.Execute(ctx, args[0], toolArgs)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", cli.DefaultEndpoint, "SSE endpoint of the MCP server")
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&list, "list", false, "List the available tools")
	cmd.Flags().BoolVar(&repl, "repl", false, "Start an interactive prompt for repeated tool calls")
	return cmd
}

func init() {
	rootCmd.AddCommand(newCallCmd())
}
