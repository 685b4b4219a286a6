package controller

import (
	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// mainControllerDispatch is the central message routing function for the TUI.
// It updates the model and collects the commands the handlers queue up.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ProvidersLoadedMsg:
		return handleProvidersLoaded(m, msg)

	case model.ReportSyncedMsg:
		return handleReportSynced(m, msg)

	case model.SyncTickMsg:
		return handleSyncTick(m)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""

	case spinner.TickMsg:
		if !m.Alive() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		var cmd tea.Cmd
		switch m.CurrentAppMode {
		case model.ModeLogOverlay:
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		case model.ModeOutputDialog:
			m.OutputViewport, cmd = m.OutputViewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	if m.ActivityLogDirty && m.CurrentAppMode == model.ModeLogOverlay {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.ActivityLogDirty = false
		if atBottom {
			m.LogViewport.GotoBottom()
		}
	}

	return m, tea.Batch(cmds...)
}
