package flow

// Status is the two-state indicator shown on a node.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusInProgress Status = "IN_PROGRESS"
)

// ConnectionState describes a node's upstream agents.
type ConnectionState struct {
	IsProcessing      bool
	IsAnyAgentRunning bool
	IsOutputAvailable bool
	IsConnected       bool
	ConnectedAgentIDs []string
}

// DeriveStatus is IN_PROGRESS while the flow is processing or any agent runs.
func DeriveStatus(c ConnectionState) Status {
	if c.IsProcessing || c.IsAnyAgentRunning {
		return StatusInProgress
	}
	return StatusIdle
}

// OutputHint is the one-line text under the "Results" heading.
func OutputHint(c ConnectionState) string {
	switch {
	case c.IsProcessing || c.IsAnyAgentRunning:
		return "Processing..."
	case c.IsOutputAvailable:
		return "Output available"
	case !c.IsConnected:
		return "No agents connected"
	default:
		return "Run the flow to see results"
	}
}
