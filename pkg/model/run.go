package model

import (
	"encoding/json"
	"time"
)

// RunState is the lifecycle state of a recorded service call.
type RunState string

const (
	RunStateRunning   RunState = "RUNNING"
	RunStateSucceeded RunState = "SUCCEEDED"
	RunStateFailed    RunState = "FAILED"
)

// IsTerminal reports whether the run has finished.
func (s RunState) IsTerminal() bool {
	return s == RunStateSucceeded || s == RunStateFailed
}

// Run records one call to a kb_Msuite run method: the record it was given,
// the result record or error it produced, and when.
type Run struct {
	ID          string          `json:"id"`
	Method      string          `json:"method"`
	Kind        string          `json:"kind"`
	State       RunState        `json:"state"`
	Params      json.RawMessage `json:"params"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	RequestID   string          `json:"request_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}
