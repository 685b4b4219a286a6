package flow

import "strconv"

// DefaultNodeName is the card title when the node has no name of its own.
const DefaultNodeName = "Investment Report"

// FlowContext tells which flow is currently open. A nil id means none.
type FlowContext interface {
	CurrentFlowID() *int
}

// NodeContext looks up output data by flow id key. A nil key is valid and
// typically yields nil.
type NodeContext interface {
	OutputNodeDataForFlow(flowID *string) *OutputData
}

// ConnectionSource reports the connection state of a node.
type ConnectionSource interface {
	Connection(nodeID string) ConnectionState
}

// NodeProps are the node's own attributes.
type NodeProps struct {
	ID          string
	Name        string
	Description string
	Selected    bool
}

// DialogProps is what the output dialog receives.
type DialogProps struct {
	IsOpen            bool
	OnOpenChange      func(open bool)
	OutputNodeData    *OutputData
	ConnectedAgentIDs []string
}

// ReportNode is the investment report output node. Only the dialog flag is
// stored; everything else is recomputed from the injected contexts.
type ReportNode struct {
	props       NodeProps
	flows       FlowContext
	nodes       NodeContext
	connections ConnectionSource
	dialogOpen  bool
}

// NewReportNode wires a node to its contexts.
func NewReportNode(props NodeProps, flows FlowContext, nodes NodeContext, connections ConnectionSource) *ReportNode {
	return &ReportNode{
		props:       props,
		flows:       flows,
		nodes:       nodes,
		connections: connections,
	}
}

// ID returns the node id.
func (n *ReportNode) ID() string { return n.props.ID }

// Name returns the card title.
func (n *ReportNode) Name() string {
	if n.props.Name == "" {
		return DefaultNodeName
	}
	return n.props.Name
}

// Description returns the card subtitle, possibly empty.
func (n *ReportNode) Description() string { return n.props.Description }

// FlowKey is the current flow id as a lookup key, nil when no flow is open.
func (n *ReportNode) FlowKey() *string {
	id := n.flows.CurrentFlowID()
	if id == nil {
		return nil
	}
	key := strconv.Itoa(*id)
	return &key
}

// Connection returns the node's current connection state.
func (n *ReportNode) Connection() ConnectionState {
	return n.connections.Connection(n.props.ID)
}

// Status derives IN_PROGRESS or IDLE from the connection state.
func (n *ReportNode) Status() Status {
	return DeriveStatus(n.Connection())
}

// OutputData returns the output of the current flow, nil when there is none.
func (n *ReportNode) OutputData() *OutputData {
	return n.nodes.OutputNodeDataForFlow(n.FlowKey())
}

// ViewOutput opens the dialog whether or not output is available; the dialog
// renders the empty state itself.
func (n *ReportNode) ViewOutput() {
	n.dialogOpen = true
}

// SetDialogOpen is the dialog's open-change handler.
func (n *ReportNode) SetDialogOpen(open bool) {
	n.dialogOpen = open
}

// DialogOpen reports whether the output dialog is shown.
func (n *ReportNode) DialogOpen() bool {
	return n.dialogOpen
}

// Dialog builds the props passed to the output dialog.
func (n *ReportNode) Dialog() DialogProps {
	return DialogProps{
		IsOpen:            n.dialogOpen,
		OnOpenChange:      n.SetDialogOpen,
		OutputNodeData:    n.OutputData(),
		ConnectedAgentIDs: n.Connection().ConnectedAgentIDs,
	}
}
