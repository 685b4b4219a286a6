package model

import (
	"context"
	"errors"

	"hedgeview/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const subsystem = "TUIModel"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous model"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next model"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view output"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh models"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// InitializeModel constructs the initial model with sensible defaults.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		CurrentAppMode: ModeMain,
		FocusedPane:    PaneModels,
		DebugMode:      cfg.DebugMode,
		BackendURL:     cfg.BackendURL,
		fetcher:        cfg.Providers,
		Node:           cfg.Node,
		Syncer:         cfg.Syncer,
		PollInterval:   cfg.PollInterval,
		ctx:            ctx,
		cancel:         cancel,
		LogViewport:    viewport.New(0, 0),
		OutputViewport: viewport.New(0, 0),
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     logChannel,
	}
	// the list shows its loading state until the first fetch lands
	m.Providers.Loading = true
	return m
}

// Init issues the single provider fetch, the first report sync and the log
// listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.StartProviderFetch(), m.Spinner.Tick}
	if m.Syncer != nil && m.Node != nil {
		m.Syncing = true
		cmds = append(cmds, SyncReportCmd(m.ctx, m.Syncer))
	}
	if cmd := ListenForLogEntriesCmd(m.LogChannel); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// StartProviderFetch begins a new fetch and supersedes any in flight.
func (m *Model) StartProviderFetch() tea.Cmd {
	m.fetchGen++
	m.Providers.Begin()
	logging.Debug(subsystem, "Fetching providers (fetch #%d)", m.fetchGen)
	return FetchProvidersCmd(m.ctx, m.fetcher, m.fetchGen)
}

// ApplyProviders settles the list with a fetch result. It reports false and
// changes nothing when the result is stale or arrives after Shutdown.
func (m *Model) ApplyProviders(msg ProvidersLoadedMsg) bool {
	if m.ctx.Err() != nil || msg.Gen != m.fetchGen {
		logging.Debug(subsystem, "Dropping provider result of fetch #%d", msg.Gen)
		return false
	}
	if msg.Err != nil && errors.Is(msg.Err, context.Canceled) {
		return false
	}
	m.Providers.Settle(msg.Providers, msg.Err)
	m.MoveSelection(0)
	return true
}

// Shutdown cancels everything bound to the model's lifetime.
func (m *Model) Shutdown() {
	m.cancel()
	m.CurrentAppMode = ModeQuitting
	m.QuittingMessage = "Shutting down..."
}

// Alive reports whether the model has not been shut down.
func (m *Model) Alive() bool {
	return m.ctx.Err() == nil
}
