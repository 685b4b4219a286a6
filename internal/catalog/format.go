package catalog

import (
	"fmt"
	"strings"
)

// FormatModelLine renders one model as "provider  display name (model name)".
// The model name is left out when it equals the display name.
func FormatModelLine(m FlattenedModel) string {
	line := fmt.Sprintf("%-12s %s", m.Provider, m.DisplayName)
	if m.ShowModelName() {
		line += " (" + m.ModelName + ")"
	}
	return line
}

// FormatList renders the summary line followed by one line per model.
func FormatList(providers []ModelProvider) string {
	list := ProviderList{Providers: providers}
	var b strings.Builder
	b.WriteString(list.Summary())
	for _, m := range list.Models() {
		b.WriteString("\n")
		b.WriteString(FormatModelLine(m))
	}
	return b.String()
}

// FormatModels renders an already flattened list the same way FormatList does.
// Providers are counted from the models themselves.
func FormatModels(models []FlattenedModel) string {
	providers := make(map[string]struct{})
	for _, m := range models {
		providers[m.Provider] = struct{}{}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d models from %d providers", len(models), len(providers))
	for _, m := range models {
		b.WriteString("\n")
		b.WriteString(FormatModelLine(m))
	}
	return b.String()
}
