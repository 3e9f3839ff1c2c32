package model

import "time"

// Response is the standard API response envelope.
type Response struct {
	Status     string      `json:"status"`
	RequestID  string      `json:"request_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *APIError   `json:"error"`
}

// Pagination holds pagination metadata for list endpoints.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ListOptions configures list queries with pagination and filtering.
type ListOptions struct {
	Limit  int
	Offset int
	State  string // Optional state filter
	Kind   string // Optional record kind filter
}

// DefaultListOptions returns sensible defaults.
func DefaultListOptions() ListOptions {
	return ListOptions{Limit: 20, Offset: 0}
}

// Clamp enforces limits (max 100, min 1).
func (o *ListOptions) Clamp() {
	if o.Limit <= 0 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

// KindInfo describes one parameter record kind for schema discovery.
type KindInfo struct {
	Kind   string      `json:"kind"`
	Method string      `json:"method,omitempty"`
	Fields []FieldInfo `json:"fields"`
}

// FieldInfo is a declared record field and its schema type.
type FieldInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ValidationResult is returned by the validate endpoint.
type ValidationResult struct {
	Valid      bool         `json:"valid"`
	Errors     []FieldError `json:"errors,omitempty"`
	Normalized any          `json:"normalized,omitempty"`
	Command    []string     `json:"command,omitempty"`
}

// ServiceStatus is the payload of the status method.
type ServiceStatus struct {
	State         string `json:"state"`
	Message       string `json:"message"`
	Version       string `json:"version"`
	GitURL        string `json:"git_url"`
	GitCommitHash string `json:"git_commit_hash"`
}
