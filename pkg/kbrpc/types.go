package kbrpc

import "encoding/json"

// Service method names.
const (
	ServiceName = "kb_Msuite"

	MethodRunCheckM          = ServiceName + ".run_checkM"
	MethodRunCheckMBinFolder = ServiceName + ".run_checkM_bin_folder"
	MethodRunCheckMWorkflow  = ServiceName + ".run_checkM_workflow"
	MethodRunCheckMLineageWf = ServiceName + ".run_checkM_lineage_wf"
	MethodStatus             = ServiceName + ".status"
)

// Version is the JSON-RPC protocol version spoken by the service.
const Version = "1.1"

// Request represents a JSON-RPC 1.1 request envelope.
type Request struct {
	// ID is a unique identifier for the request.
	ID string `json:"id"`

	// Method is the fully-qualified method name.
	Method string `json:"method"`

	// Version is the JSON-RPC protocol version (always "1.1").
	Version string `json:"version"`

	// Params contains the method parameters as a positional array. Each
	// element is kept raw so record key order survives.
	Params []json.RawMessage `json:"params"`
}

// Response represents a JSON-RPC 1.1 response envelope.
type Response struct {
	ID      string          `json:"id"`
	Version string          `json:"version"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the KBase JSON-RPC error object.
type RPCError struct {
	// Name is the error class name, e.g. "JSONRPCError" or "Server error".
	Name string `json:"name"`

	// Code is the numeric error code.
	Code int `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Detail carries a longer description or traceback.
	Detail string `json:"error,omitempty"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
