package components

import (
	"hedgeview/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// ErrorBanner is the red box shown above a list when a fetch failed.
type ErrorBanner struct {
	Title   string
	Message string
	Width   int
}

// NewErrorBanner creates a banner with the default title.
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{Title: "Error", Message: message}
}

// WithWidth sets the outer width; zero lets the content decide.
func (b *ErrorBanner) WithWidth(width int) *ErrorBanner {
	b.Width = width
	return b
}

// Render returns the styled banner, or nothing when there is no message.
func (b *ErrorBanner) Render() string {
	if b.Message == "" {
		return ""
	}
	style := design.BannerErrorStyle
	body := lipgloss.JoinVertical(lipgloss.Left,
		design.BannerTitleErrorStyle.Render(design.IconText(design.IconWarning, b.Title)),
		design.TextErrorStyle.Render(b.Message),
	)
	if b.Width > 0 {
		style = style.Copy().Width(b.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(body)
}
