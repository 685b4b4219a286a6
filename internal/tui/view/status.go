package view

import (
	"fmt"

	"hedgeview/internal/tui/components"
	"hedgeview/internal/tui/model"
)

// renderStatusBar renders the bottom bar: the transient status message if one
// is set, otherwise the focused pane and the last sync time.
func renderStatusBar(m *model.Model, width int) string {
	left := fmt.Sprintf("%s  •  h help", m.FocusedPane)
	if m.Syncing {
		left += "  •  syncing"
	} else if !m.LastSyncedAt.IsZero() {
		left += "  •  synced " + m.LastSyncedAt.Format("15:04:05")
	}

	bar := components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(m.BackendURL)
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
