package backend

import (
	"encoding/json"
	"fmt"

	"hedgeview/internal/catalog"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	detail     string
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Detail *string `json:"detail"`
	}
	detail := catalog.UnknownErrorDetail
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != nil {
		detail = *payload.Detail
	}
	return &APIError{StatusCode: status, detail: detail}
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.detail)
}

// Detail is the backend's "detail" message, or "Unknown error" when the body had none.
func (e *APIError) Detail() string {
	return e.detail
}
