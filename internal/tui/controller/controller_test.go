package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/internal/flow"
	"hedgeview/internal/tui/model"
	"hedgeview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	providers []catalog.ModelProvider
	err       error
	calls     int
}

func (s *stubFetcher) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	s.calls++
	return s.providers, s.err
}

type stubSyncer struct {
	err   error
	calls int
}

func (s *stubSyncer) Sync(ctx context.Context) (flow.SyncResult, error) {
	s.calls++
	return flow.SyncResult{}, s.err
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func setupModel(t *testing.T) (*model.Model, *flow.Store, *stubFetcher) {
	t.Helper()
	fetcher := &stubFetcher{providers: []catalog.ModelProvider{
		{Name: "OpenAI", Models: []catalog.Model{{DisplayName: "GPT-4o", ModelName: "gpt-4o"}}},
		{Name: "Anthropic", Models: []catalog.Model{{DisplayName: "Claude Sonnet", ModelName: "claude-sonnet"}}},
	}}
	store := flow.NewStore()
	node := flow.NewReportNode(flow.NodeProps{ID: "report"}, store, store, store)
	m := model.InitializeModel(model.TUIConfig{Providers: fetcher, Node: node}, nil)
	m.Width = 100
	m.Height = 30
	return m, store, fetcher
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return err
	}
	t.Cleanup(func() { clipboardWriteAll = orig })
	return &copied
}

func loadProviders(t *testing.T, m *model.Model) {
	t.Helper()
	msg := m.StartProviderFetch()()
	m, _ = mainControllerDispatch(m, msg)
	require.False(t, m.Providers.Loading)
}

func TestAppModel_InitFetchesOnce(t *testing.T) {
	m, _, fetcher := setupModel(t)
	app := NewAppModel(m)

	cmd := app.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Providers.Loading)
	assert.Equal(t, 0, fetcher.calls, "the fetch runs as a command, not inline")
}

func TestAppModel_Update_WindowSizeMsg(t *testing.T) {
	m, _, _ := setupModel(t)
	app := NewAppModel(m)

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	assert.Nil(t, cmd)
	updatedApp, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, 140, updatedApp.model.Width)
	assert.Equal(t, 50, updatedApp.model.Height)
	assert.NotEmpty(t, updatedApp.View())
}

func TestDispatch_ProvidersLoaded(t *testing.T) {
	m, _, _ := setupModel(t)
	loadProviders(t, m)

	assert.Equal(t, catalog.PhasePopulated, m.Providers.Phase())
	assert.Len(t, m.Providers.Models(), 2)
}

func TestDispatch_ProvidersFailedShowsStatus(t *testing.T) {
	m, _, fetcher := setupModel(t)
	fetcher.err = errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")

	msg := m.StartProviderFetch()()
	m, cmd := mainControllerDispatch(m, msg)

	assert.NotNil(t, cmd)
	assert.Equal(t, catalog.ConnectErrorMessage, m.Providers.Err)
	assert.Equal(t, catalog.ConnectErrorMessage, m.StatusBarMessage)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Equal(t, catalog.PhaseEmpty, m.Providers.Phase())
}

func TestDispatch_ResultAfterQuitIsDropped(t *testing.T) {
	m, _, _ := setupModel(t)
	fetch := m.StartProviderFetch()

	m, cmd := mainControllerDispatch(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)

	m, _ = mainControllerDispatch(m, fetch())
	assert.True(t, m.Providers.Loading, "no state change after teardown")
	assert.Empty(t, m.Providers.Providers)
}

func TestKey_RefreshRefetches(t *testing.T) {
	m, _, fetcher := setupModel(t)
	loadProviders(t, m)

	m, cmd := mainControllerDispatch(m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.Providers.Loading)

	m, _ = mainControllerDispatch(m, cmd())
	assert.False(t, m.Providers.Loading)
	assert.Equal(t, 2, fetcher.calls)
}

func TestKey_TabAndEnterOpenDialog(t *testing.T) {
	m, _, _ := setupModel(t)

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode, "enter on the models pane does nothing")

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.PaneReport, m.FocusedPane)

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeOutputDialog, m.CurrentAppMode)
	assert.True(t, m.Node.DialogOpen(), "dialog opens even without output")
	assert.Nil(t, m.Node.Dialog().OutputNodeData)

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.False(t, m.Node.DialogOpen())

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, model.PaneModels, m.FocusedPane)
}

func TestKey_QuitInDialogOnlyCloses(t *testing.T) {
	m, _, _ := setupModel(t)
	m.FocusedPane = model.PaneReport
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = mainControllerDispatch(m, keyRunes("q"))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
	assert.True(t, m.Alive())

	m, cmd := mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.False(t, m.Alive())
}

func TestKey_CopySelectedModel(t *testing.T) {
	copied := stubClipboard(t, nil)
	m, _, _ := setupModel(t)
	loadProviders(t, m)

	m, _ = mainControllerDispatch(m, keyRunes("j"))
	m, cmd := mainControllerDispatch(m, keyRunes("y"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "gpt-4o", *copied)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
}

func TestKey_CopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard utilities available"))
	m, _, _ := setupModel(t)
	loadProviders(t, m)

	m, _ = mainControllerDispatch(m, keyRunes("y"))
	assert.Equal(t, "Copy failed", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestKey_CopyOutputFromDialog(t *testing.T) {
	copied := stubClipboard(t, nil)
	m, store, _ := setupModel(t)
	id := 9
	store.SetCurrentFlowID(&id)
	store.SetOutput("9", &flow.OutputData{Decisions: map[string]flow.Decision{"TSLA": {Action: "sell", Quantity: 2}}})

	m.FocusedPane = model.PaneReport
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = mainControllerDispatch(m, keyRunes("y"))

	assert.Contains(t, *copied, `"TSLA"`)
	assert.Equal(t, "Output copied to clipboard", m.StatusBarMessage)
}

func TestKey_Overlays(t *testing.T) {
	m, _, _ := setupModel(t)

	m, _ = mainControllerDispatch(m, keyRunes("h"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)

	m, _ = mainControllerDispatch(m, keyRunes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = mainControllerDispatch(m, keyRunes("L"))
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestDispatch_ReportSyncSchedulesNextTick(t *testing.T) {
	m, _, _ := setupModel(t)
	syncer := &stubSyncer{}
	m.Syncer = syncer
	m.PollInterval = time.Second
	m.Syncing = true

	m, cmd := mainControllerDispatch(m, model.ReportSyncedMsg{})
	assert.NotNil(t, cmd)
	assert.False(t, m.Syncing)
	assert.False(t, m.LastSyncedAt.IsZero())

	m, cmd = mainControllerDispatch(m, model.SyncTickMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.Syncing)
	_, ok := cmd().(model.ReportSyncedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, syncer.calls)
}

func TestDispatch_ReportSyncError(t *testing.T) {
	m, _, _ := setupModel(t)
	m, cmd := mainControllerDispatch(m, model.ReportSyncedMsg{Err: errors.New("boom")})
	assert.Nil(t, cmd, "no polling without an interval")
	assert.Equal(t, "Sync failed", m.LastSyncError)

	m.Shutdown()
	m, cmd = mainControllerDispatch(m, model.SyncTickMsg{})
	assert.Nil(t, cmd)
}

func TestDispatch_NewLogEntry(t *testing.T) {
	m, _, _ := setupModel(t)
	ch := make(chan logging.LogEntry, 1)
	m.LogChannel = ch

	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "Backend", Message: "hello"}
	m, cmd := mainControllerDispatch(m, model.NewLogEntryMsg{Entry: entry})
	assert.NotNil(t, cmd)
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[Backend] hello")

	debug := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelDebug, Subsystem: "Backend", Message: "noisy"}
	m, _ = mainControllerDispatch(m, model.NewLogEntryMsg{Entry: debug})
	assert.Len(t, m.ActivityLog, 1, "debug entries need debug mode")

	m.DebugMode = true
	m, _ = mainControllerDispatch(m, model.NewLogEntryMsg{Entry: debug})
	assert.Len(t, m.ActivityLog, 2)
}

func TestDispatch_ClearStatusBar(t *testing.T) {
	m, _, _ := setupModel(t)
	m.StatusBarMessage = "old"
	m, _ = mainControllerDispatch(m, model.ClearStatusBarMsg{})
	assert.Empty(t, m.StatusBarMessage)
}

func TestNextFocus(t *testing.T) {
	assert.Equal(t, model.PaneReport, nextFocus(paneOrder, model.PaneModels, 1))
	assert.Equal(t, model.PaneModels, nextFocus(paneOrder, model.PaneReport, 1))
	assert.Equal(t, model.PaneReport, nextFocus(paneOrder, model.PaneModels, -1))
	assert.Equal(t, model.PaneModels, nextFocus(paneOrder, model.Pane(42), 5))
	assert.Equal(t, model.PaneReport, nextFocus(nil, model.PaneReport, 1))
}

func TestNewProgram(t *testing.T) {
	p := NewProgram(model.TUIConfig{}, nil)
	assert.NotNil(t, p)
}
