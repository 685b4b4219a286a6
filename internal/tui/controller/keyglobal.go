package controller

import (
	"strings"

	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// swapped in tests; the real clipboard needs a display server
var clipboardWriteAll = clipboard.WriteAll

var paneOrder = []model.Pane{model.PaneModels, model.PaneReport}

// handleKeyMsgGlobal processes key presses for every mode.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) && (keyMsg.String() == "ctrl+c" || m.CurrentAppMode == model.ModeMain) {
		m.Shutdown()
		return m, tea.Quit
	}

	switch m.CurrentAppMode {
	case model.ModeOutputDialog:
		return handleKeyOutputDialog(m, keyMsg)
	case model.ModeLogOverlay:
		return handleKeyLogOverlay(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) || key.Matches(keyMsg, m.Keys.Quit) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
		return m, nil

	case key.Matches(keyMsg, m.Keys.Tab):
		delta := 1
		if keyMsg.String() == "shift+tab" {
			delta = -1
		}
		m.FocusedPane = nextFocus(paneOrder, m.FocusedPane, delta)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Refresh):
		LogInfo("Refreshing providers")
		return m, m.StartProviderFetch()

	case key.Matches(keyMsg, m.Keys.Up):
		if m.FocusedPane == model.PaneModels {
			m.MoveSelection(-1)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		if m.FocusedPane == model.PaneModels {
			m.MoveSelection(1)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		if m.FocusedPane != model.PaneReport || m.Node == nil {
			return m, nil
		}
		m.Node.ViewOutput()
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeOutputDialog
		m.OutputViewport.GotoTop()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		return copySelectedModel(m)
	}

	return m, nil
}

func handleKeyOutputDialog(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Quit):
		m.Node.Dialog().OnOpenChange(false)
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		text, err := view.OutputClipboardText(m.Node.Dialog())
		if err != nil {
			LogError(err, "Failed to encode output")
			return m, m.SetStatusMessage("Copy output failed", model.StatusBarError, model.StatusMessageTTL)
		}
		return copyToClipboard(m, text, "Output copied to clipboard")
	}
	var cmd tea.Cmd
	m.OutputViewport, cmd = m.OutputViewport.Update(keyMsg)
	return m, cmd
}

func handleKeyLogOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		return copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}

func copySelectedModel(m *model.Model) (*model.Model, tea.Cmd) {
	if m.FocusedPane != model.PaneModels {
		return m, nil
	}
	sel, ok := m.SelectedFlattenedModel()
	if !ok {
		return m, m.SetStatusMessage("Nothing to copy", model.StatusBarWarning, model.StatusMessageTTL)
	}
	return copyToClipboard(m, sel.ModelName, "Copied "+sel.ModelName)
}

func copyToClipboard(m *model.Model, text, success string) (*model.Model, tea.Cmd) {
	if err := clipboardWriteAll(text); err != nil {
		LogError(err, "Clipboard write failed")
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, model.StatusMessageTTL)
	}
	return m, m.SetStatusMessage(success, model.StatusBarSuccess, model.StatusMessageTTL)
}

// nextFocus returns the element after current in order, wrapping at either
// end. An unknown current yields the first (delta>0) or last (delta<0) element.
func nextFocus(order []model.Pane, current model.Pane, delta int) model.Pane {
	if len(order) == 0 {
		return current
	}
	if delta > 0 {
		delta = 1
	} else if delta < 0 {
		delta = -1
	}

	idx := -1
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta >= 0 {
			return order[0]
		}
		return order[len(order)-1]
	}

	n := len(order)
	return order[(idx+delta+n)%n]
}
