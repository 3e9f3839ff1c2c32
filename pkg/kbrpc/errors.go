package kbrpc

import (
	"errors"
	"fmt"
)

// Standard JSON-RPC error codes.
const (
	ErrCodeParseError     = -32700 // Parse error - invalid JSON
	ErrCodeInvalidRequest = -32600 // Invalid Request - not a valid JSON-RPC request
	ErrCodeMethodNotFound = -32601 // Method not found
	ErrCodeInvalidParams  = -32602 // Invalid params
	ErrCodeInternalError  = -32603 // Internal error

	// Server error range: -32000 to -32099
	ErrCodeServerError = -32000
)

// ErrCodeAuthFailed is returned when a method needs a token and none was sent.
const ErrCodeAuthFailed = -32400

// Error names used in RPCError.Name.
const (
	NameJSONRPCError = "JSONRPCError"
	NameServerError  = "Server error"
)

var (
	// ErrNotAuthenticated indicates no authentication token is configured.
	ErrNotAuthenticated = errors.New("not authenticated: no token configured")

	// ErrNoToken indicates no token was found in the environment or on disk.
	ErrNoToken = errors.New("no token found")

	// ErrEmptyResult indicates the service returned an empty result array.
	ErrEmptyResult = errors.New("empty result")
)

// HTTPError represents an HTTP-level error (non-200 response).
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsRetryable returns true for 5xx and 429 responses.
func (e *HTTPError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// Error wraps a failed call with the method that failed.
type Error struct {
	// Op is the method that failed.
	Op string

	// Code is the error code (if from RPC).
	Code int

	// Message is the error message.
	Message string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s: [%d] %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with operation context.
func WrapError(op string, err error) *Error {
	return &Error{Op: op, Err: err, Message: err.Error()}
}

// FromRPCError converts an RPCError to an Error that still unwraps to it.
func FromRPCError(op string, rpcErr *RPCError) *Error {
	return &Error{
		Op:      op,
		Code:    rpcErr.Code,
		Message: rpcErr.Message,
		Err:     rpcErr,
	}
}

// IsInvalidParams reports whether the service rejected the parameters.
func IsInvalidParams(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == ErrCodeInvalidParams
}

// IsAuthError returns true if the error is an authentication error.
func IsAuthError(err error) bool {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == ErrCodeAuthFailed
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 401 || httpErr.StatusCode == 403
	}
	return errors.Is(err, ErrNotAuthenticated)
}

// IsRetryable returns true if the error is likely transient and the request
// should be retried.
func IsRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.IsRetryable()
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		if rpcErr.Code >= -32099 && rpcErr.Code <= -32000 {
			return rpcErr.Code != ErrCodeAuthFailed
		}
		return rpcErr.Code == ErrCodeInternalError
	}
	var transport *transportError
	return errors.As(err, &transport)
}

// transportError marks a failure to reach the service at all.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return "HTTP request failed: " + e.err.Error()
}

func (e *transportError) Unwrap() error { return e.err }
