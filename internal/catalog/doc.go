// Package catalog holds the language-model provider list shown by hedgeview.
//
// The backend groups models by provider. The UI wants one row per model, so
// Flatten merges each provider's models with the provider name and orders the
// result by provider. ProviderList carries the view state around a fetch:
// loading, the last error message and the last good provider list.
package catalog
