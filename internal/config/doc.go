// Package config provides configuration management for hedgeview.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (embedded in binary)
//  2. User configuration (~/.config/hedgeview/config.yaml)
//  3. Project configuration (./.hedgeview/config.yaml)
//
// A single file can be loaded instead with LoadConfigFromPath, which is what the
// --config flag uses.
//
// # Configuration Structure
//
//	backend:
//	  url: "http://localhost:8000"
//	  timeout: "30s"
//	ui:
//	  darkMode: true
//	  flowId: 3
//	  nodeId: "investment-report-node"
//	  pollInterval: "2s"
//	mcp:
//	  transport: "sse"   # or "stdio"
//	  host: "localhost"
//	  port: 8091
//	logging:
//	  level: "debug"
//
// # Environment Variable Expansion
//
// ${VAR} references are expanded before parsing:
//
//	backend:
//	  url: "${HEDGE_FUND_BACKEND}"
package config
