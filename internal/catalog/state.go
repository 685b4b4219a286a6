package catalog

import "fmt"

// Phase is the mutually exclusive body state of the provider list.
// The error banner is independent of it.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePopulated
	PhaseEmpty
)

// String provides a human-readable representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhasePopulated:
		return "Populated"
	case PhaseEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// ProviderList is the state behind the provider list view. It is owned by a
// single view and is not safe for concurrent use.
type ProviderList struct {
	Loading   bool
	Err       string
	Providers []ModelProvider
}

// Begin marks a fetch as in flight and clears the previous error.
func (l *ProviderList) Begin() {
	l.Loading = true
	l.Err = ""
}

// Succeed replaces the provider list with a freshly fetched one.
func (l *ProviderList) Succeed(providers []ModelProvider) {
	l.Providers = providers
	l.Loading = false
}

// Fail records the error and keeps the previous provider list.
func (l *ProviderList) Fail(err error) {
	l.Err = ErrorMessage(err)
	l.Loading = false
}

// Settle applies the outcome of a fetch.
func (l *ProviderList) Settle(providers []ModelProvider, err error) {
	if err != nil {
		l.Fail(err)
		return
	}
	l.Succeed(providers)
}

// HasError reports whether the error banner should be shown.
func (l *ProviderList) HasError() bool {
	return l.Err != ""
}

// Models derives the flattened list from the current providers.
func (l *ProviderList) Models() []FlattenedModel {
	return Flatten(l.Providers)
}

// Phase picks what the list body shows.
func (l *ProviderList) Phase() Phase {
	if l.Loading {
		return PhaseLoading
	}
	if len(l.Models()) > 0 {
		return PhasePopulated
	}
	return PhaseEmpty
}

// Summary is the header counter, e.g. "3 models from 2 providers".
func (l *ProviderList) Summary() string {
	return fmt.Sprintf("%d models from %d providers", len(l.Models()), len(l.Providers))
}
