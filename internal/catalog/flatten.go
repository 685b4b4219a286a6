package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Flatten merges every provider's models into one list ordered by provider name.
// Provider names are compared with a locale-aware collator; models of equal
// provider names keep their encounter order.
func Flatten(providers []ModelProvider) []FlattenedModel {
	total := 0
	for _, p := range providers {
		total += len(p.Models)
	}
	out := make([]FlattenedModel, 0, total)
	for _, p := range providers {
		for _, m := range p.Models {
			out = append(out, FlattenedModel{
				DisplayName: m.DisplayName,
				ModelName:   m.ModelName,
				Provider:    p.Name,
			})
		}
	}

	SortByProvider(out)
	return out
}

// SortByProvider orders models by provider name in place, keeping the
// encounter order of models that share a provider.
func SortByProvider(models []FlattenedModel) {
	// collators are not safe for concurrent use
	c := collate.New(language.English)
	sort.SliceStable(models, func(i, j int) bool {
		return c.CompareString(models[i].Provider, models[j].Provider) < 0
	})
}
