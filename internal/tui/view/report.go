package view

import (
	"fmt"
	"strings"

	"hedgeview/internal/flow"
	"hedgeview/internal/tui/components"
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"
)

// RenderReportCard renders the investment report node.
func RenderReportCard(m *model.Model, width int) string {
	if m.Node == nil {
		return components.NewCard(flow.DefaultNodeName).
			WithWidth(width).
			WithSection(design.TextSecondaryStyle.Render("No report node configured")).
			Render()
	}

	focused := m.FocusedPane == model.PaneReport
	status := m.Node.Status()
	indicator := components.NewStatusIndicator(status)
	if status == flow.StatusInProgress {
		indicator.WithFrame(m.Spinner.View())
	}

	conn := m.Node.Connection()
	results := design.TitleStyle.Render("Results") + "\n" +
		design.TextSecondaryStyle.Render(flow.OutputHint(conn))

	button := design.ButtonSecondaryStyle.Render(design.IconText(design.IconFileText, "view output"))
	if focused {
		button = design.ButtonStyle.Render(design.IconText(design.IconFileText, "view output"))
	}

	card := components.NewCard(m.Node.Name()).
		WithDescription(m.Node.Description()).
		WithStatus(indicator.Render()).
		WithSection(results).
		WithSection(button).
		WithSection(renderFlowInfo(m)).
		WithWidth(width).
		SetSelected(focused)
	return card.Render()
}

func renderFlowInfo(m *model.Model) string {
	var lines []string
	if key := m.Node.FlowKey(); key != nil {
		lines = append(lines, design.TextSecondaryStyle.Render("Flow #"+*key))
	} else {
		lines = append(lines, design.TextTertiaryStyle.Render("No flow selected"))
	}
	if agents := m.Node.Connection().ConnectedAgentIDs; len(agents) > 0 {
		lines = append(lines, design.TextSecondaryStyle.Render(fmt.Sprintf("%d agents connected", len(agents))))
	}
	if m.LastSyncError != "" {
		lines = append(lines, design.TextErrorStyle.Render(design.IconText(design.IconWarning, m.LastSyncError)))
	}
	return strings.Join(lines, "\n")
}
