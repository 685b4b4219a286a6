package flow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Decision is the portfolio manager's call for one ticker.
type Decision struct {
	Action     string          `json:"action"`
	Quantity   float64         `json:"quantity"`
	Confidence float64         `json:"confidence"`
	Reasoning  json.RawMessage `json:"reasoning,omitempty"`
}

// Signal is one analyst agent's view of one ticker.
type Signal struct {
	Signal     string          `json:"signal"`
	Confidence float64         `json:"confidence"`
	Reasoning  json.RawMessage `json:"reasoning,omitempty"`
}

// OutputData is the result bag of a completed run: decisions per ticker and
// analyst signals per agent and ticker.
type OutputData struct {
	Decisions      map[string]Decision          `json:"decisions"`
	AnalystSignals map[string]map[string]Signal `json:"analyst_signals"`
	CurrentPrices  map[string]float64           `json:"current_prices,omitempty"`
}

// ParseOutput decodes run results. Empty or null input yields nil.
func ParseOutput(raw json.RawMessage) (*OutputData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var out OutputData
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode run results: %w", err)
	}
	return &out, nil
}

// Tickers returns the tickers that have a decision, sorted.
func (o *OutputData) Tickers() []string {
	if o == nil {
		return nil
	}
	tickers := make([]string, 0, len(o.Decisions))
	for t := range o.Decisions {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// Agents returns the ids of agents that produced signals, sorted.
func (o *OutputData) Agents() []string {
	if o == nil {
		return nil
	}
	agents := make([]string, 0, len(o.AnalystSignals))
	for a := range o.AnalystSignals {
		agents = append(agents, a)
	}
	sort.Strings(agents)
	return agents
}

// ReasoningText renders a reasoning value: strings unquoted, anything else as compact JSON.
func ReasoningText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
