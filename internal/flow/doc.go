// Package flow models the investment report node of a hedge-fund flow.
//
// A ReportNode never looks anything up globally. It receives a FlowContext
// (which flow is current), a NodeContext (output data per flow) and a
// ConnectionSource (per-node connection booleans) when it is built, and derives
// its status from them on every call. Store is the in-memory implementation of
// all three; Syncer fills it from the backend's flow runs.
package flow
