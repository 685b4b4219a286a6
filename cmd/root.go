package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hedgeview/internal/app"

	"github.com/spf13/cobra"
)

var (
	// configPath is a single config file that replaces the layered lookup.
	configPath string
	// debug enables verbose logging across the application.
	debug bool
	// backendURL overrides backend.url from the configuration.
	backendURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hedgeview",
	Short: "Browse the hedge fund backend's models and investment reports",
	Long: `hedgeview is a terminal client for the AI hedge fund backend.
It lists the cloud language models each provider offers and shows the
investment report node of a flow, with its status and final output.
The same data is available as plain CLI output and as MCP tools.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed connections)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "hedgeview version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra prints the error, we just exit non-zero
		stop()
		os.Exit(1)
	}
}

// newAppConfig builds the application config from the persistent flags.
func newAppConfig(noTUI bool) *app.Config {
	cfg := app.NewConfig(noTUI, debug, configPath)
	cfg.BackendURL = backendURL
	return cfg
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: layered ~/.config/hedgeview/config.yaml and ./.hedgeview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend-url", "", "Backend base URL (overrides backend.url)")
}
