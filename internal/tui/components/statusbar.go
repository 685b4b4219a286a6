package components

import (
	"strings"

	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/model"
	"hedgeview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message that replaces the left/right text
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	innerWidth := s.Width - style.GetHorizontalFrameSize()

	var content string
	switch {
	case s.ShowMessage:
		content = utils.TruncateString(design.IconText(s.getIcon(), s.Message), innerWidth)
	case s.LeftText != "" && s.RightText != "":
		padding := innerWidth - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = utils.TruncateString(s.LeftText, innerWidth)
		}
	case s.LeftText != "":
		content = utils.TruncateString(s.LeftText, innerWidth)
	default:
		content = utils.TruncateString(s.RightText, innerWidth)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getIcon() string {
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.IconCheck
	case model.StatusBarError:
		return design.IconCross
	case model.StatusBarWarning:
		return design.IconWarning
	default:
		return design.IconInfo
	}
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
