package model

import (
	"hedgeview/internal/catalog"
	"hedgeview/internal/flow"
	"hedgeview/pkg/logging"
)

// ---- Provider list messages ----

// ProvidersLoadedMsg carries the outcome of one provider fetch. Gen ties it to
// the fetch that produced it so superseded results can be dropped.
type ProvidersLoadedMsg struct {
	Gen       int
	Providers []catalog.ModelProvider
	Err       error
}

// ---- Report node messages ----

type ReportSyncedMsg struct {
	Result flow.SyncResult
	Err    error
}

type SyncTickMsg struct{}

// ---- Logging / status bar ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
