package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hedgeview/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{BaseURL: srv.URL + "/", Timeout: 5 * time.Second, UserAgent: "hedgeview-test"})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(Options{})
	assert.Error(t, err)
}

func TestListProviders_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/language-models/providers", r.URL.Path)
		assert.Equal(t, "hedgeview-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"providers":[
			{"name":"OpenAI","models":[{"display_name":"GPT-4o","model_name":"gpt-4o"}]},
			{"name":"Anthropic","models":[{"display_name":"Claude","model_name":"claude-3"}]}
		]}`))
	})

	providers, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "OpenAI", providers[0].Name)
	assert.Equal(t, catalog.Model{DisplayName: "GPT-4o", ModelName: "gpt-4o"}, providers[0].Models[0])

	models := catalog.Flatten(providers)
	assert.Equal(t, "Anthropic", models[0].Provider)
}

func TestListProviders_DetailError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"bad key"}`))
	})

	_, err := c.ListProviders(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "bad key", apiErr.Detail())
	assert.Contains(t, catalog.ErrorMessage(err), "bad key")
}

func TestListProviders_MalformedErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.ListProviders(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch providers: Unknown error", catalog.ErrorMessage(err))
}

func TestListProviders_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.ListProviders(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, catalog.ConnectErrorMessage, catalog.ErrorMessage(err))
}

func TestListProviders_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProviders(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestListModels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/language-models/", r.URL.Path)
		_, _ = w.Write([]byte(`{"models":[{"display_name":"Llama 3","model_name":"llama3","provider":"Ollama"}]}`))
	})

	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Ollama", models[0].Provider)
}

func TestFlowRuns(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flows/3/runs/active":
			_, _ = w.Write([]byte(`null`))
		case "/flows/3/runs/latest":
			_, _ = w.Write([]byte(`{"id":9,"flow_id":3,"status":"COMPLETE","run_number":4,
				"results":{"decisions":{"AAPL":{"action":"buy","quantity":10,"confidence":80.5}}}}`))
		case "/flows/404/runs/latest":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Flow not found"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	active, err := c.ActiveFlowRun(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, active)

	latest, err := c.LatestFlowRun(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, RunStatusComplete, latest.Status)
	assert.Equal(t, 4, latest.RunNumber)
	assert.Contains(t, string(latest.Results), "AAPL")

	_, err = c.LatestFlowRun(context.Background(), 404)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Flow not found", apiErr.Detail())
}
