package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"hedgeview/internal/config"
	"hedgeview/pkg/logging"
)

// Application is the main application structure that bootstraps and runs hedgeview
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, sets up CLI logging on logOutput and
// initializes services.
func NewApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	if logOutput == nil {
		logOutput = os.Stderr
	}

	hc, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.HedgeviewConfig = &hc
	cfg.applyOverrides()
	if err := cfg.HedgeviewConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.InitForCLI(cfg.LogLevel(), logOutput)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func loadConfig(path string) (config.HedgeviewConfig, error) {
	if path != "" {
		hc, err := config.LoadConfigFromPath(path)
		if err != nil {
			return hc, fmt.Errorf("failed to load hedgeview configuration from path %s: %w", path, err)
		}
		return hc, nil
	}
	hc, err := config.LoadConfig()
	if err != nil {
		return hc, fmt.Errorf("failed to load hedgeview configuration: %w", err)
	}
	return hc, nil
}

// LogLevel is debug when --debug is set, otherwise the configured level.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.HedgeviewConfig == nil {
		return logging.LevelInfo
	}
	return logging.ParseLevel(c.HedgeviewConfig.Logging.Level)
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context, out io.Writer) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.services, out)
	}
	return runTUIMode(ctx, a.config, a.services)
}
