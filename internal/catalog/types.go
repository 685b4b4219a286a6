package catalog

// Model is one model entry as reported under a provider.
type Model struct {
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
}

// ModelProvider is a named source of language models.
type ModelProvider struct {
	Name   string  `json:"name"`
	Models []Model `json:"models"`
}

// ProvidersResponse is the body of GET /language-models/providers.
type ProvidersResponse struct {
	Providers []ModelProvider `json:"providers"`
}

// FlattenedModel is a model merged with the name of its provider.
type FlattenedModel struct {
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
	Provider    string `json:"provider"`
}

// Key identifies the row; provider plus model name.
func (m FlattenedModel) Key() string {
	return m.Provider + "-" + m.ModelName
}

// ShowModelName reports whether the model name needs its own label.
func (m FlattenedModel) ShowModelName() bool {
	return m.ModelName != m.DisplayName
}
