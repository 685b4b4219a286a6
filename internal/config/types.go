package config

import (
	"time"
)

// HedgeviewConfig is the top-level configuration structure for hedgeview.
type HedgeviewConfig struct {
	Backend BackendConfig `yaml:"backend"`
	UI      UIConfig      `yaml:"ui"`
	MCP     MCPConfig     `yaml:"mcp"`
	Logging LoggingConfig `yaml:"logging"`
}

// BackendConfig points hedgeview at the hedge-fund backend API.
type BackendConfig struct {
	URL       string        `yaml:"url,omitempty"`       // Base URL, e.g. "http://localhost:8000"
	Timeout   time.Duration `yaml:"timeout,omitempty"`   // Per-request timeout, e.g. "30s"
	UserAgent string        `yaml:"userAgent,omitempty"` // Sent on every request
}

// UIConfig controls the interactive terminal UI.
type UIConfig struct {
	DarkMode     *bool         `yaml:"darkMode,omitempty"`
	FlowID       int           `yaml:"flowId,omitempty"`       // Flow whose report node is shown; 0 means none selected
	NodeID       string        `yaml:"nodeId,omitempty"`       // Report node id inside the flow
	NodeName     string        `yaml:"nodeName,omitempty"`     // Card title; defaults to "Investment Report"
	PollInterval *time.Duration `yaml:"pollInterval,omitempty"` // How often flow runs are re-read; 0 disables polling
}

// IsDarkMode reports the effective dark mode setting.
func (u UIConfig) IsDarkMode() bool {
	return u.DarkMode == nil || *u.DarkMode
}

// EffectivePollInterval returns the poll interval, or 0 when unset.
func (u UIConfig) EffectivePollInterval() time.Duration {
	if u.PollInterval == nil {
		return 0
	}
	return *u.PollInterval
}

const (
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
)

// MCPConfig defines how `hedgeview serve` exposes its tools.
type MCPConfig struct {
	Transport string `yaml:"transport,omitempty"` // "stdio" or "sse"
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`

	// CacheTTL is how long list_models reuses a provider catalog; 0 disables caching.
	CacheTTL *time.Duration `yaml:"cacheTTL,omitempty"`
}

// EffectiveCacheTTL returns the cache TTL, or 0 when unset.
func (m MCPConfig) EffectiveCacheTTL() time.Duration {
	if m.CacheTTL == nil {
		return 0
	}
	return *m.CacheTTL
}

// Duration returns a pointer to d, for building configs in code.
func Duration(d time.Duration) *time.Duration {
	return &d
}

// LoggingConfig sets the default log level.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}
