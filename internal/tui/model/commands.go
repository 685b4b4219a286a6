package model

import (
	"context"
	"errors"
	"time"

	"hedgeview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoBackend = errors.New("no backend configured")

// FetchProvidersCmd loads the provider catalog once.
func FetchProvidersCmd(ctx context.Context, fetcher ProviderFetcher, gen int) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return ProvidersLoadedMsg{Gen: gen, Err: errNoBackend}
		}
		providers, err := fetcher.ListProviders(ctx)
		return ProvidersLoadedMsg{Gen: gen, Providers: providers, Err: err}
	}
}

// SyncReportCmd refreshes the report node once.
func SyncReportCmd(ctx context.Context, syncer ReportSyncer) tea.Cmd {
	return func() tea.Msg {
		res, err := syncer.Sync(ctx)
		return ReportSyncedMsg{Result: res, Err: err}
	}
}

// SyncTickCmd schedules the next report sync.
func SyncTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SyncTickMsg{}
	})
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the
// channel is closed, which stops the listen loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
