package components

import (
	"hedgeview/internal/flow"
	"hedgeview/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// StatusIndicator renders a node status as icon and label.
type StatusIndicator struct {
	Status   flow.Status
	ShowText bool
	Frame    string
}

// NewStatusIndicator creates a status indicator showing icon and text.
func NewStatusIndicator(status flow.Status) *StatusIndicator {
	return &StatusIndicator{Status: status, ShowText: true}
}

// IconOnly hides the label.
func (s *StatusIndicator) IconOnly() *StatusIndicator {
	s.ShowText = false
	return s
}

// WithFrame replaces the in-progress icon, typically with a spinner frame.
func (s *StatusIndicator) WithFrame(frame string) *StatusIndicator {
	s.Frame = frame
	return s
}

// Render returns the styled indicator.
func (s *StatusIndicator) Render() string {
	style := s.getStyle()
	out := style.Render(s.getIcon())
	if s.ShowText {
		out += style.Render(s.getText())
	}
	return out
}

func (s *StatusIndicator) getIcon() string {
	if s.Status == flow.StatusInProgress {
		if s.Frame != "" {
			return s.Frame + " "
		}
		return design.SafeIcon(design.IconHourglass)
	}
	return design.SafeIcon(design.IconCircle)
}

func (s *StatusIndicator) getText() string {
	switch s.Status {
	case flow.StatusInProgress:
		return "In progress"
	case flow.StatusIdle:
		return "Idle"
	default:
		return string(s.Status)
	}
}

func (s *StatusIndicator) getStyle() lipgloss.Style {
	if s.Status == flow.StatusInProgress {
		return design.TextWarningStyle
	}
	return design.TextSecondaryStyle
}
