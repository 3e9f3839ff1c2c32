package model

import (
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "Kind 'nope' not found"}
	want := "NOT_FOUND: Kind 'nope' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Kind", "checkm_foo")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "Kind 'checkm_foo' not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Kind 'checkm_foo' not found")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid parameters",
		FieldError{Field: "bin_folder", Message: "required"},
		FieldError{Field: "thread", Message: "must be at least 1"},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Fatalf("Details length = %d, want 2", len(err.Details))
	}
	if got := err.Fields(); got[0] != "bin_folder" || got[1] != "thread" {
		t.Errorf("Fields() = %v", got)
	}
	want := "invalid parameters: bin_folder: required; thread: must be at least 1"
	if got := err.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", NewValidationError("bad"), true},
		{"wrapped", fmt.Errorf("run: %w", NewValidationError("bad")), true},
		{"not found", NewNotFoundError("Kind", "x"), false},
		{"plain", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.want)
			}
		})
	}
}
