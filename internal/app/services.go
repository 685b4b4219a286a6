package app

import (
	"fmt"

	"hedgeview/internal/backend"
	"hedgeview/internal/flow"
)

// Services holds the backend client and the report node state built on it.
type Services struct {
	Backend *backend.Client
	Store   *flow.Store
	Syncer  *flow.Syncer
	Node    *flow.ReportNode
}

// InitializeServices creates the backend client and wires the report node to
// a store that the syncer keeps current.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.HedgeviewConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	hc := cfg.HedgeviewConfig

	client, err := backend.NewClient(backend.Options{
		BaseURL:   hc.Backend.URL,
		Timeout:   hc.Backend.Timeout,
		UserAgent: hc.Backend.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	store := flow.NewStore()
	if hc.UI.FlowID > 0 {
		id := hc.UI.FlowID
		store.SetCurrentFlowID(&id)
	}

	node := flow.NewReportNode(flow.NodeProps{
		ID:   hc.UI.NodeID,
		Name: hc.UI.NodeName,
	}, store, store, store)

	return &Services{
		Backend: client,
		Store:   store,
		Syncer:  flow.NewSyncer(client, store, hc.UI.NodeID),
		Node:    node,
	}, nil
}
