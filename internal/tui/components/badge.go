package components

import (
	"hedgeview/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a short colored label, used for provider names.
type Badge struct {
	Text  string
	Color lipgloss.TerminalColor
}

// NewBadge creates a badge in the secondary text color.
func NewBadge(text string) *Badge {
	return &Badge{Text: text, Color: design.ColorTextSecondary}
}

// NewProviderBadge creates a badge colored for a model provider.
func NewProviderBadge(provider string) *Badge {
	return &Badge{Text: provider, Color: design.ProviderColor(provider)}
}

// WithColor overrides the badge color.
func (b *Badge) WithColor(c lipgloss.TerminalColor) *Badge {
	b.Color = c
	return b
}

// Render returns the styled badge. An empty badge renders as nothing.
func (b *Badge) Render() string {
	if b.Text == "" {
		return ""
	}
	return design.BadgeStyle.Copy().Foreground(b.Color).Render(b.Text)
}
