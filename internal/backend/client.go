package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/pkg/logging"

	"github.com/go-resty/resty/v2"
)

const subsystem = "Backend"

const (
	providersPath = "/language-models/providers"
	modelsPath    = "/language-models/"
)

// Client talks to the hedge-fund backend HTTP API.
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a client for the backend at opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend base URL must not be empty")
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetLogger(restyLogger{}).
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		httpClient.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProviders fetches the models grouped by provider.
func (c *Client) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	var out catalog.ProvidersResponse
	if err := c.getJSON(ctx, providersPath, &out); err != nil {
		return nil, err
	}
	logging.Debug(subsystem, "Fetched %d providers", len(out.Providers))
	return out.Providers, nil
}

// ListModels fetches the flat model list, including locally served models.
func (c *Client) ListModels(ctx context.Context) ([]catalog.FlattenedModel, error) {
	var out struct {
		Models []catalog.FlattenedModel `json:"models"`
	}
	if err := c.getJSON(ctx, modelsPath, &out); err != nil {
		return nil, err
	}
	return out.Models, nil
}

// getJSON issues a GET and decodes a 2xx body into out. Non-2xx responses become
// *APIError; transport failures are returned wrapped.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		logging.Debug(subsystem, "GET %s failed: %v", path, err)
		return fmt.Errorf("request %s: %w", path, err)
	}
	if resp.IsError() || !resp.IsSuccess() {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		logging.Debug(subsystem, "GET %s returned %d: %s", path, apiErr.StatusCode, apiErr.Detail())
		return apiErr
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
