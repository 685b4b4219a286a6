package controller

import (
	"hedgeview/internal/tui/model"
	"hedgeview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the interactive UI. Extra
// options are appended after the alternate screen option.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry, opts ...tea.ProgramOption) *tea.Program {
	m := model.InitializeModel(cfg, logChannel)
	return tea.NewProgram(NewAppModel(m), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}
