package controller

import (
	"context"
	"errors"
	"time"

	"hedgeview/internal/tui/model"
	"hedgeview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func handleProvidersLoaded(m *model.Model, msg model.ProvidersLoadedMsg) (*model.Model, tea.Cmd) {
	if !m.ApplyProviders(msg) {
		return m, nil
	}
	if msg.Err != nil {
		LogError(msg.Err, "Provider fetch failed")
		return m, m.SetStatusMessage(m.Providers.Err, model.StatusBarError, 5*time.Second)
	}
	LogInfo("Loaded %s", m.Providers.Summary())
	return m, nil
}

func handleReportSynced(m *model.Model, msg model.ReportSyncedMsg) (*model.Model, tea.Cmd) {
	m.Syncing = false
	if !m.Alive() || errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}

	if msg.Err != nil {
		logging.Warn(controllerSubsystem, "Report sync failed: %v", msg.Err)
		m.LastSyncError = "Sync failed"
	} else {
		m.LastSyncError = ""
		m.LastSyncedAt = time.Now()
	}

	if m.PollInterval > 0 {
		return m, model.SyncTickCmd(m.PollInterval)
	}
	return m, nil
}

func handleSyncTick(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.Alive() || m.Syncer == nil || m.Syncing {
		return m, nil
	}
	m.Syncing = true
	return m, model.SyncReportCmd(m.Context(), m.Syncer)
}

// handleNewLogEntry appends INFO and above to the activity log, and DEBUG too
// while debug mode is on.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
	}
	return m
}
