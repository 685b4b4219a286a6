package app

import (
	"hedgeview/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is a single config file; empty means the layered lookup.
	ConfigPath string

	// Overrides from flags, applied on top of the loaded file.
	FlowID       int
	NodeID       string
	BackendURL   string
	MCPTransport string
	MCPHost      string
	MCPPort      int

	// Loaded configuration
	HedgeviewConfig *config.HedgeviewConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides copies non-zero flag values into the loaded configuration.
func (c *Config) applyOverrides() {
	if c.HedgeviewConfig == nil {
		return
	}
	if c.BackendURL != "" {
		c.HedgeviewConfig.Backend.URL = c.BackendURL
	}
	if c.FlowID > 0 {
		c.HedgeviewConfig.UI.FlowID = c.FlowID
	}
	if c.NodeID != "" {
		c.HedgeviewConfig.UI.NodeID = c.NodeID
	}
	if c.MCPTransport != "" {
		c.HedgeviewConfig.MCP.Transport = c.MCPTransport
	}
	if c.MCPHost != "" {
		c.HedgeviewConfig.MCP.Host = c.MCPHost
	}
	if c.MCPPort > 0 {
		c.HedgeviewConfig.MCP.Port = c.MCPPort
	}
}
