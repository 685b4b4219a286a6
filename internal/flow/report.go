package flow

import (
	"context"
)

// Report is a one-shot snapshot of a report node for a given flow, used by the
// CLI and the MCP tools.
type Report struct {
	FlowID            int         `json:"flow_id"`
	NodeID            string      `json:"node_id"`
	NodeName          string      `json:"node_name"`
	Status            Status      `json:"status"`
	Hint              string      `json:"hint"`
	ConnectedAgentIDs []string    `json:"connected_agent_ids"`
	Output            *OutputData `json:"output"`
}

// BuildReport syncs a throwaway store for flowID and reads the node back.
func BuildReport(ctx context.Context, runs RunSource, flowID int, props NodeProps) (Report, error) {
	store := NewStore()
	store.SetCurrentFlowID(&flowID)
	if _, err := NewSyncer(runs, store, props.ID).Sync(ctx); err != nil {
		return Report{}, err
	}

	node := NewReportNode(props, store, store, store)
	conn := node.Connection()
	return Report{
		FlowID:            flowID,
		NodeID:            node.ID(),
		NodeName:          node.Name(),
		Status:            node.Status(),
		Hint:              OutputHint(conn),
		ConnectedAgentIDs: conn.ConnectedAgentIDs,
		Output:            node.OutputData(),
	}, nil
}
