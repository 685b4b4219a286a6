package flow

import "sync"

// Store is a concurrency-safe FlowContext, NodeContext and ConnectionSource.
type Store struct {
	mu          sync.RWMutex
	currentFlow *int
	outputs     map[string]*OutputData
	connections map[string]ConnectionState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		outputs:     make(map[string]*OutputData),
		connections: make(map[string]ConnectionState),
	}
}

// SetCurrentFlowID selects the open flow; nil clears it.
func (s *Store) SetCurrentFlowID(id *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == nil {
		s.currentFlow = nil
		return
	}
	v := *id
	s.currentFlow = &v
}

// CurrentFlowID implements FlowContext.
func (s *Store) CurrentFlowID() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentFlow == nil {
		return nil
	}
	v := *s.currentFlow
	return &v
}

// SetOutput stores output data under a flow key; nil removes it.
func (s *Store) SetOutput(flowKey string, data *OutputData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data == nil {
		delete(s.outputs, flowKey)
		return
	}
	s.outputs[flowKey] = data
}

// OutputNodeDataForFlow implements NodeContext.
func (s *Store) OutputNodeDataForFlow(flowID *string) *OutputData {
	if flowID == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputs[*flowID]
}

// SetConnection replaces the connection state of a node.
func (s *Store) SetConnection(nodeID string, state ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.ConnectedAgentIDs = append([]string(nil), state.ConnectedAgentIDs...)
	s.connections[nodeID] = state
}

// Connection implements ConnectionSource. Unknown nodes are disconnected and idle.
func (s *Store) Connection(nodeID string) ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.connections[nodeID]
	state.ConnectedAgentIDs = append([]string(nil), state.ConnectedAgentIDs...)
	return state
}
