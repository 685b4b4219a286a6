package cmd

import (
	"fmt"

	"hedgeview/internal/app"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the cloud language models of every provider",
		Long: `Fetches the provider catalog once and prints one line per model,
sorted by provider name. The model name is shown next to the display name
when the two differ. With --all the backend's full model list is used
instead, which also includes locally served models.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			application, err := app.NewApplication(newAppConfig(true), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			if all {
				return app.PrintAllModels(commandContext(cmd), application.Services(), cmd.OutOrStdout(), output)
			}
			return app.PrintModels(commandContext(cmd), application.Services(), cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", app.FormatText, "Output format: text or json")
	cmd.Flags().BoolVar(&all, "all", false, "List every model the backend knows, including local ones")
	return cmd
}

func validateOutput(output string) error {
	switch output {
	case app.FormatText, app.FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (use %q or %q)", output, app.FormatText, app.FormatJSON)
	}
}

func init() {
	rootCmd.AddCommand(newModelsCmd())
}
