package config

import "time"

const (
	DefaultBackendURL   = "http://localhost:8000"
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "hedgeview"
	DefaultNodeName     = "Investment Report"
	DefaultPollInterval = 2 * time.Second
	DefaultMCPPort      = 8091
	DefaultMCPCacheTTL  = 30 * time.Second
)

// GetDefaultConfig returns minimal defaults: a local backend and stdio MCP transport.
func GetDefaultConfig() HedgeviewConfig {
	return HedgeviewConfig{
		Backend: BackendConfig{
			URL:       DefaultBackendURL,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		UI: UIConfig{
			NodeName:     DefaultNodeName,
			PollInterval: Duration(DefaultPollInterval),
		},
		MCP: MCPConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      DefaultMCPPort,
			CacheTTL:  Duration(DefaultMCPCacheTTL),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
