package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/hedgeview"
	projectConfigDir = ".hedgeview"
	configFileName   = "config.yaml"
)

// LoadConfig loads the hedgeview configuration by layering default, user, and project settings.
func LoadConfig() (HedgeviewConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return HedgeviewConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return HedgeviewConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFromPath loads a single configuration file on top of the defaults,
// skipping the user and project layers.
func LoadConfigFromPath(path string) (HedgeviewConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return HedgeviewConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a HedgeviewConfig from a YAML file.
// ${VAR} references are expanded from the environment before parsing.
func loadConfigFromFile(filePath string) (HedgeviewConfig, error) {
	var config HedgeviewConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return HedgeviewConfig{}, err
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return HedgeviewConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the overlay
// leave the base untouched; pointer fields override whenever the key was present.
func mergeConfigs(base, overlay HedgeviewConfig) HedgeviewConfig {
	merged := base

	if overlay.Backend.URL != "" {
		merged.Backend.URL = strings.TrimRight(overlay.Backend.URL, "/")
	}
	if overlay.Backend.Timeout != 0 {
		merged.Backend.Timeout = overlay.Backend.Timeout
	}
	if overlay.Backend.UserAgent != "" {
		merged.Backend.UserAgent = overlay.Backend.UserAgent
	}

	if overlay.UI.DarkMode != nil {
		merged.UI.DarkMode = overlay.UI.DarkMode
	}
	if overlay.UI.FlowID != 0 {
		merged.UI.FlowID = overlay.UI.FlowID
	}
	if overlay.UI.NodeID != "" {
		merged.UI.NodeID = overlay.UI.NodeID
	}
	if overlay.UI.NodeName != "" {
		merged.UI.NodeName = overlay.UI.NodeName
	}
	if overlay.UI.PollInterval != nil {
		merged.UI.PollInterval = overlay.UI.PollInterval
	}

	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}
	if overlay.MCP.CacheTTL != nil {
		merged.MCP.CacheTTL = overlay.MCP.CacheTTL
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// Validate checks values that cannot be defaulted.
func (c HedgeviewConfig) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url must not be empty")
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative")
	}
	if c.UI.EffectivePollInterval() < 0 {
		return fmt.Errorf("ui.pollInterval must not be negative")
	}
	if c.MCP.EffectiveCacheTTL() < 0 {
		return fmt.Errorf("mcp.cacheTTL must not be negative")
	}
	switch c.MCP.Transport {
	case MCPTransportStdio, MCPTransportSSE:
	default:
		return fmt.Errorf("mcp.transport %q is not supported (use %q or %q)", c.MCP.Transport, MCPTransportStdio, MCPTransportSSE)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
