package view

import (
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the key bindings centered on screen.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpContent := m.Help.FullHelpView(m.Keys.FullHelp())

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpContent)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// renderLogOverlay renders the activity log in a scrollable viewport.
func renderLogOverlay(m *model.Model) string {
	titleView := design.DialogTitleStyle.Render(design.IconText(design.IconScroll, "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"))

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	newViewportHeight := overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize() - lipgloss.Height(titleView)
	if newViewportWidth < 0 {
		newViewportWidth = 0
	}
	if newViewportHeight < 0 {
		newViewportHeight = 0
	}

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight
	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.ActivityLogDirty = false
		m.LogViewportLastWidth = m.LogViewport.Width
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.Copy().
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)

	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceBackground(design.ColorOverlayWhitespace))
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusBar(m, m.Width))
}
