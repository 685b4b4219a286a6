package model

import (
	"context"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/internal/flow"
	"hedgeview/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeOutputDialog
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeOutputDialog:
		return "OutputDialog"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Pane is the focused half of the main screen.
type Pane int

const (
	PaneModels Pane = iota
	PaneReport
)

// String provides a human-readable representation of the Pane.
func (p Pane) String() string {
	switch p {
	case PaneModels:
		return "Models"
	case PaneReport:
		return "Report"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	StatusMessageTTL    = 3 * time.Second
)

// ProviderFetcher loads the provider catalog; *backend.Client satisfies it.
type ProviderFetcher interface {
	ListProviders(ctx context.Context) ([]catalog.ModelProvider, error)
}

// ReportSyncer refreshes the report node's state; *flow.Syncer satisfies it.
type ReportSyncer interface {
	Sync(ctx context.Context) (flow.SyncResult, error)
}

// TUIConfig carries everything the model needs from the outside.
type TUIConfig struct {
	DebugMode    bool
	BackendURL   string
	Providers    ProviderFetcher
	Syncer       ReportSyncer
	Node         *flow.ReportNode
	PollInterval time.Duration
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Tab        key.Binding
	Enter      key.Binding
	Esc        key.Binding
	Refresh    key.Binding
	Copy       key.Binding
	Help       key.Binding
	ToggleLog  key.Binding
	ToggleDark key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Enter, k.Esc, k.Copy},
		{k.Refresh, k.ToggleLog, k.ToggleDark},
		{k.Help, k.Quit},
	}
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	FocusedPane     Pane
	DebugMode       bool
	QuittingMessage string
	BackendURL      string

	// Provider list state
	Providers     catalog.ProviderList
	SelectedModel int
	fetcher       ProviderFetcher
	fetchGen      int

	// Report node state
	Node          *flow.ReportNode
	Syncer        ReportSyncer
	PollInterval  time.Duration
	Syncing       bool
	LastSyncError string
	LastSyncedAt  time.Time

	// Cancelled on quit; in-flight fetches stop and late results are dropped.
	ctx    context.Context
	cancel context.CancelFunc

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	OutputViewport       viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SetStatusMessage updates the status bar message and clears it after clearAfter.
// A newer message cancels the pending clear of an older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// SelectedFlattenedModel returns the highlighted model of the list.
func (m *Model) SelectedFlattenedModel() (catalog.FlattenedModel, bool) {
	models := m.Providers.Models()
	if len(models) == 0 {
		return catalog.FlattenedModel{}, false
	}
	return models[clamp(m.SelectedModel, 0, len(models)-1)], true
}

// MoveSelection moves the list highlight by delta, staying in range.
func (m *Model) MoveSelection(delta int) {
	n := len(m.Providers.Models())
	if n == 0 {
		m.SelectedModel = 0
		return
	}
	m.SelectedModel = clamp(m.SelectedModel+delta, 0, n-1)
}

// Context is the model's lifetime context.
func (m *Model) Context() context.Context {
	return m.ctx
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
