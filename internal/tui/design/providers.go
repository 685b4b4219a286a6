package design

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var providerColors = map[string]lipgloss.AdaptiveColor{
	"anthropic":  {Light: "#C2410C", Dark: "#FB923C"},
	"openai":     {Light: "#047857", Dark: "#34D399"},
	"groq":       {Light: "#B91C1C", Dark: "#F87171"},
	"deepseek":   {Light: "#1D4ED8", Dark: "#60A5FA"},
	"google":     {Light: "#6D28D9", Dark: "#A78BFA"},
	"gemini":     {Light: "#6D28D9", Dark: "#A78BFA"},
	"ollama":     {Light: "#374151", Dark: "#D1D5DB"},
	"openrouter": {Light: "#0E7490", Dark: "#22D3EE"},
	"xai":        {Light: "#111827", Dark: "#E5E7EB"},
}

// ProviderColor returns the badge color of a provider. Unknown providers get
// the secondary text color.
func ProviderColor(provider string) lipgloss.AdaptiveColor {
	if c, ok := providerColors[strings.ToLower(strings.TrimSpace(provider))]; ok {
		return c
	}
	return ColorTextSecondary
}
