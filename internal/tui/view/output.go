package view

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"hedgeview/internal/flow"
	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	NoOutputTitle = "No output available"
	NoOutputHint  = "Run the flow to generate an investment report."
)

// renderOutputDialog shows the dialog over a dimmed canvas. The dialog is
// driven entirely by the node's DialogProps.
func renderOutputDialog(m *model.Model) string {
	if m.Node == nil || !m.Node.DialogOpen() {
		return renderMain(m)
	}
	props := m.Node.Dialog()

	dialogWidth := int(float64(m.Width) * 0.8)
	dialogHeight := int(float64(m.Height) * 0.8)
	title := design.DialogTitleStyle.Render(design.IconText(design.IconFileText, m.Node.Name()+" Output") +
		design.TextTertiaryStyle.Render("  (↑/↓ scroll  •  y copy  •  Esc close)"))

	vpWidth := dialogWidth - design.DialogStyle.GetHorizontalFrameSize()
	vpHeight := dialogHeight - design.DialogStyle.GetVerticalFrameSize() - lipgloss.Height(title)
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}
	m.OutputViewport.Width = vpWidth
	m.OutputViewport.Height = vpHeight
	m.OutputViewport.SetContent(RenderOutputContent(props, vpWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.OutputViewport.View())
	dialog := design.DialogStyle.Copy().
		Width(dialogWidth - design.DialogStyle.GetHorizontalBorderSize()).
		Height(dialogHeight - design.DialogStyle.GetVerticalBorderSize()).
		Render(content)

	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceBackground(design.ColorOverlayWhitespace))
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}

// RenderOutputContent renders the dialog body: decisions, analyst signals and
// the connected agents, or the not-available state when there is no output.
func RenderOutputContent(props flow.DialogProps, width int) string {
	out := props.OutputNodeData
	if out == nil {
		lines := []string{
			design.TitleStyle.Render(NoOutputTitle),
			design.TextSecondaryStyle.Render(NoOutputHint),
		}
		if len(props.ConnectedAgentIDs) > 0 {
			lines = append(lines, "", renderAgents(props.ConnectedAgentIDs))
		}
		return strings.Join(lines, "\n")
	}

	var blocks []string
	blocks = append(blocks, design.TitleStyle.Render("Decisions"))
	if len(out.Decisions) == 0 {
		blocks = append(blocks, design.TextSecondaryStyle.Render("No decisions"))
	} else {
		blocks = append(blocks, decisionsTable(out, width))
	}

	blocks = append(blocks, "", design.TitleStyle.Render("Analyst Signals"))
	if len(out.AnalystSignals) == 0 {
		blocks = append(blocks, design.TextSecondaryStyle.Render("No analyst signals"))
	} else {
		blocks = append(blocks, signalsTable(out, width))
	}

	if len(props.ConnectedAgentIDs) > 0 {
		blocks = append(blocks, "", renderAgents(props.ConnectedAgentIDs))
	}
	return strings.Join(blocks, "\n")
}

func decisionsTable(out *flow.OutputData, width int) string {
	var rows [][]string
	for _, ticker := range out.Tickers() {
		d := out.Decisions[ticker]
		rows = append(rows, []string{
			ticker,
			strings.ToUpper(d.Action),
			formatNumber(d.Quantity),
			fmt.Sprintf("%.1f%%", d.Confidence),
			utils.TruncateString(utils.FirstLine(flow.ReasoningText(d.Reasoning)), 48),
		})
	}
	return newTable(width).
		Headers("Ticker", "Action", "Quantity", "Confidence", "Reasoning").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return design.TitleStyle.Copy().Padding(0, 1)
			}
			if col == 1 && row >= 0 && row < len(rows) {
				return design.GetSignalStyle(rows[row][1]).Copy().Padding(0, 1)
			}
			return design.TextStyle.Copy().Padding(0, 1)
		}).
		Render()
}

func signalsTable(out *flow.OutputData, width int) string {
	var rows [][]string
	for _, agent := range out.Agents() {
		signals := out.AnalystSignals[agent]
		tickers := make([]string, 0, len(signals))
		for t := range signals {
			tickers = append(tickers, t)
		}
		sort.Strings(tickers)
		for _, t := range tickers {
			s := signals[t]
			rows = append(rows, []string{agent, t, strings.ToUpper(s.Signal), fmt.Sprintf("%.1f%%", s.Confidence)})
		}
	}
	return newTable(width).
		Headers("Agent", "Ticker", "Signal", "Confidence").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return design.TitleStyle.Copy().Padding(0, 1)
			}
			if col == 2 && row >= 0 && row < len(rows) {
				return design.GetSignalStyle(rows[row][2]).Copy().Padding(0, 1)
			}
			return design.TextStyle.Copy().Padding(0, 1)
		}).
		Render()
}

func newTable(width int) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(design.ColorBorder))
	if width > 0 {
		t = t.Width(width)
	}
	return t
}

func renderAgents(ids []string) string {
	return design.TextSecondaryStyle.Render("Connected agents: " + strings.Join(ids, ", "))
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// OutputClipboardText is what `y` copies from the output dialog: the raw
// output as indented JSON, or a short note when there is none.
func OutputClipboardText(props flow.DialogProps) (string, error) {
	if props.OutputNodeData == nil {
		return NoOutputTitle, nil
	}
	b, err := json.MarshalIndent(props.OutputNodeData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return string(b), nil
}
