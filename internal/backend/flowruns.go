package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Run statuses as stored by the backend.
const (
	RunStatusIdle       = "IDLE"
	RunStatusInProgress = "IN_PROGRESS"
	RunStatusComplete   = "COMPLETE"
	RunStatusError      = "ERROR"
)

// FlowRun is one execution of a flow.
type FlowRun struct {
	ID           int             `json:"id"`
	FlowID       int             `json:"flow_id"`
	Status       string          `json:"status"`
	RunNumber    int             `json:"run_number"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	RequestData  json.RawMessage `json:"request_data,omitempty"`
	Results      json.RawMessage `json:"results,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// LatestFlowRun returns the most recent run of a flow, or nil if it never ran.
func (c *Client) LatestFlowRun(ctx context.Context, flowID int) (*FlowRun, error) {
	return c.getRun(ctx, fmt.Sprintf("/flows/%d/runs/latest", flowID))
}

// ActiveFlowRun returns the IN_PROGRESS run of a flow, or nil if none is running.
func (c *Client) ActiveFlowRun(ctx context.Context, flowID int) (*FlowRun, error) {
	return c.getRun(ctx, fmt.Sprintf("/flows/%d/runs/active", flowID))
}

func (c *Client) getRun(ctx context.Context, path string) (*FlowRun, error) {
	// a JSON null body decodes into a nil pointer
	var run *FlowRun
	if err := c.getJSON(ctx, path, &run); err != nil {
		return nil, err
	}
	return run, nil
}
