package view

import (
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	// side-by-side panes below this width stack vertically
	minWidthForColumns = 90
	reportPaneWidth    = 44
	headerHeight       = 1
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeOutputDialog:
		return renderOutputDialog(m)
	default:
		if m.Width == 0 || m.Height == 0 {
			return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
		}
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	header := renderHeader(m)
	statusBar := renderStatusBar(m, m.Width)
	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.Width >= minWidthForColumns {
		listWidth := m.Width - reportPaneWidth - 1
		list := RenderProviderList(m, listWidth, bodyHeight)
		report := RenderReportCard(m, reportPaneWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", report)
	} else {
		report := RenderReportCard(m, m.Width)
		list := RenderProviderList(m, m.Width, bodyHeight-lipgloss.Height(report))
		body = lipgloss.JoinVertical(lipgloss.Left, list, report)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

func renderHeader(m *model.Model) string {
	title := design.TitleStyle.Render("hedgeview")
	sub := design.SubtitleStyle.Render("  " + m.BackendURL)
	return lipgloss.NewStyle().MaxWidth(m.Width).Render(title + sub)
}
