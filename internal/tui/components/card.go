package components

import (
	"strings"

	"hedgeview/internal/tui/design"
	"hedgeview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Card is the bordered shell of a flow node: a header with title, optional
// description and a status slot, followed by sections separated by rules.
type Card struct {
	Title       string
	Description string
	Status      string
	Sections    []string
	Width       int
	Selected    bool
}

// NewCard creates a card with the minimum width.
func NewCard(title string) *Card {
	return &Card{
		Title: title,
		Width: design.MinCardWidth,
	}
}

// WithDescription sets the subtitle line.
func (c *Card) WithDescription(desc string) *Card {
	c.Description = desc
	return c
}

// WithStatus sets the rendered status shown at the right of the title.
func (c *Card) WithStatus(status string) *Card {
	c.Status = status
	return c
}

// WithSection appends a body section.
func (c *Card) WithSection(content string) *Card {
	c.Sections = append(c.Sections, content)
	return c
}

// WithWidth sets the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.Width = width
	return c
}

// SetSelected updates the selection highlight.
func (c *Card) SetSelected(selected bool) *Card {
	c.Selected = selected
	return c
}

// Render returns the styled card.
func (c *Card) Render() string {
	if c.Width < design.MinCardWidth {
		c.Width = design.MinCardWidth
	}

	style := design.CardStyle
	if c.Selected {
		style = design.CardSelectedStyle
	}
	innerWidth := c.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	blocks := []string{c.renderHeader(innerWidth)}
	if c.Description != "" {
		blocks = append(blocks, design.SubtitleStyle.Render(utils.TruncateString(c.Description, innerWidth)))
	}
	for _, section := range c.Sections {
		blocks = append(blocks, design.CardSectionStyle.Copy().Width(innerWidth).Render(section))
	}

	return style.Width(c.Width).Render(strings.Join(blocks, "\n"))
}

func (c *Card) renderHeader(width int) string {
	titleStyle := design.TitleStyle
	if c.Selected {
		titleStyle = titleStyle.Copy().Foreground(design.ColorPrimary)
	}

	statusWidth := lipgloss.Width(c.Status)
	titleWidth := width
	if statusWidth > 0 {
		titleWidth = width - statusWidth - 1
	}
	title := titleStyle.Render(utils.TruncateString(c.Title, titleWidth))
	if c.Status == "" {
		return title
	}

	gap := width - lipgloss.Width(title) - statusWidth
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + c.Status
}
