package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"hedgeview/internal/backend"
	"hedgeview/pkg/logging"
)

const subsystem = "FlowSync"

// RunSource reads flow runs; *backend.Client satisfies it.
type RunSource interface {
	ActiveFlowRun(ctx context.Context, flowID int) (*backend.FlowRun, error)
	LatestFlowRun(ctx context.Context, flowID int) (*backend.FlowRun, error)
}

// SyncResult summarizes one Sync call.
type SyncResult struct {
	FlowID     *int
	Latest     *backend.FlowRun
	Connection ConnectionState
}

// Syncer derives a report node's connection state and output from the runs of
// the current flow and writes both into a Store.
type Syncer struct {
	runs   RunSource
	store  *Store
	nodeID string
}

// NewSyncer creates a syncer for one node.
func NewSyncer(runs RunSource, store *Store, nodeID string) *Syncer {
	return &Syncer{runs: runs, store: store, nodeID: nodeID}
}

// Sync refreshes the store once. With no current flow it clears the node's
// connection state and returns without I/O.
func (s *Syncer) Sync(ctx context.Context) (SyncResult, error) {
	flowID := s.store.CurrentFlowID()
	if flowID == nil {
		s.store.SetConnection(s.nodeID, ConnectionState{})
		return SyncResult{}, nil
	}

	active, err := s.runs.ActiveFlowRun(ctx, *flowID)
	if err != nil {
		return SyncResult{FlowID: flowID}, fmt.Errorf("active run of flow %d: %w", *flowID, err)
	}
	latest, err := s.runs.LatestFlowRun(ctx, *flowID)
	if err != nil {
		return SyncResult{FlowID: flowID}, fmt.Errorf("latest run of flow %d: %w", *flowID, err)
	}

	var output *OutputData
	if latest != nil && latest.Status == backend.RunStatusComplete {
		output, err = ParseOutput(latest.Results)
		if err != nil {
			logging.Warn(subsystem, "Ignoring results of run %d: %v", latest.ID, err)
			output = nil
		}
	}

	agents := connectedAgents(latest, output)
	state := ConnectionState{
		IsProcessing:      active != nil,
		IsAnyAgentRunning: latest != nil && latest.Status == backend.RunStatusInProgress,
		IsOutputAvailable: output != nil,
		IsConnected:       len(agents) > 0,
		ConnectedAgentIDs: agents,
	}

	key := strconv.Itoa(*flowID)
	s.store.SetOutput(key, output)
	s.store.SetConnection(s.nodeID, state)
	logging.Debug(subsystem, "Flow %d synced: status=%s output=%t agents=%d", *flowID, DeriveStatus(state), output != nil, len(agents))

	return SyncResult{FlowID: flowID, Latest: latest, Connection: state}, nil
}

// connectedAgents prefers the agents the run was requested with and falls back
// to the agents that produced signals.
func connectedAgents(run *backend.FlowRun, output *OutputData) []string {
	if run != nil && len(run.RequestData) > 0 {
		var req struct {
			SelectedAgents []string `json:"selected_agents"`
			GraphNodes     []struct {
				ID string `json:"id"`
			} `json:"graph_nodes"`
		}
		if err := json.Unmarshal(run.RequestData, &req); err == nil {
			ids := append([]string(nil), req.SelectedAgents...)
			for _, n := range req.GraphNodes {
				ids = append(ids, n.ID)
			}
			if len(ids) > 0 {
				return dedupeSorted(ids)
			}
		}
	}
	return output.Agents()
}

func dedupeSorted(ids []string) []string {
	sort.Strings(ids)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || (len(out) > 0 && out[len(out)-1] == id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
