package view

import (
	"strings"

	"hedgeview/internal/catalog"
	"hedgeview/internal/tui/components"
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	LoadingText = "Loading cloud models..."
	EmptyText   = "No models available"
)

// RenderProviderList renders the cloud model list: an optional error banner
// above a body that is either loading, empty or the sorted model rows.
func RenderProviderList(m *model.Model, width, height int) string {
	focused := m.FocusedPane == model.PaneModels
	style := design.PanelStyle
	if focused {
		style = design.PanelFocusedStyle
	}
	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	title := design.TitleStyle.Render(design.IconText(design.IconCloud, "Cloud Models"))
	phase := m.Providers.Phase()
	if phase != catalog.PhaseLoading {
		title += design.TextSecondaryStyle.Render("  " + m.Providers.Summary())
	}
	blocks := []string{title}

	if m.Providers.HasError() {
		blocks = append(blocks, components.NewErrorBanner(m.Providers.Err).WithWidth(innerWidth).Render())
	}

	switch phase {
	case catalog.PhaseLoading:
		blocks = append(blocks, m.Spinner.View()+" "+design.TextSecondaryStyle.Render(LoadingText))
	case catalog.PhaseEmpty:
		blocks = append(blocks, design.TextSecondaryStyle.Render(EmptyText))
	default:
		used := 0
		for _, b := range blocks {
			used += lipgloss.Height(b)
		}
		rowsHeight := height - style.GetVerticalFrameSize() - used
		blocks = append(blocks, renderModelRows(m.Providers.Models(), m.SelectedModel, focused, innerWidth, rowsHeight))
	}

	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(blocks, "\n"))
}

// renderModelRows shows a window of rows that keeps the selection visible.
func renderModelRows(models []catalog.FlattenedModel, selected int, focused bool, width, height int) string {
	if height < 1 {
		height = 1
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > len(models) {
		end = len(models)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, renderModelRow(models[i], focused && i == selected, width))
	}
	return strings.Join(rows, "\n")
}

func renderModelRow(fm catalog.FlattenedModel, selected bool, width int) string {
	badge := components.NewProviderBadge(fm.Provider).Render()
	left := fm.DisplayName
	if fm.ShowModelName() {
		left += " " + design.CodeStyle.Render(fm.ModelName)
	}

	avail := width - lipgloss.Width(badge) - design.SpaceXS - 1
	if lipgloss.Width(left) > avail {
		left = utils.TruncateString(fm.DisplayName, avail)
	}
	gap := avail - lipgloss.Width(left)
	if gap < 1 {
		gap = 1
	}

	style := design.ListItemStyle
	if selected {
		style = design.ListItemSelectedStyle
	}
	return style.Render(left + strings.Repeat(" ", gap) + badge)
}
