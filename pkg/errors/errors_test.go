// Package errors tests for structured error types.
package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	ie := New("TEST_ERROR", CategoryConfig, "test message")

	if ie.Code != "TEST_ERROR" {
		t.Errorf("expected Code 'TEST_ERROR', got %q", ie.Code)
	}
	if ie.Category != CategoryConfig {
		t.Errorf("expected Category CategoryConfig, got %v", ie.Category)
	}
	if ie.Message != "test message" {
		t.Errorf("expected Message 'test message', got %q", ie.Message)
	}
	if ie.Context == nil {
		t.Error("expected Context map to be initialized, got nil")
	}
	if ie.Cause != nil {
		t.Errorf("expected Cause to be nil, got %v", ie.Cause)
	}
}

func TestIrplError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *IrplError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCommandNotFound, CategoryCommand, "unknown command"),
			expected: "COMMAND_NOT_FOUND: unknown command",
		},
		{
			name: "with cause",
			err: New(ErrIOReadFailed, CategoryIO, "failed to read directory").
				WithCause(fmt.Errorf("permission denied")),
			expected: "IO_READ_FAILED: failed to read directory: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIrplError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ErrConfigParseFailed, CategoryConfig, "bad yaml")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !errors.Is(err, New(ErrConfigParseFailed, CategoryConfig, "other message")) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, New(ErrConfigInvalid, CategoryConfig, "bad yaml")) {
		t.Error("expected errors.Is not to match a different code")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var ie *IrplError
	if !errors.As(wrapped, &ie) {
		t.Fatal("expected errors.As to find the IrplError")
	}
	if ie.Code != ErrConfigParseFailed {
		t.Errorf("unexpected code %q", ie.Code)
	}
}

func TestIsCodeAndCategory(t *testing.T) {
	err := DuplicateCommand("add")

	if !IsCode(err, ErrCommandDuplicate) {
		t.Error("expected IsCode to match")
	}
	if !IsCategory(err, CategoryCommand) {
		t.Error("expected IsCategory to match")
	}
	if IsCode(errors.New("plain"), ErrCommandDuplicate) {
		t.Error("plain errors never match a code")
	}
	if IsCode(nil, ErrCommandDuplicate) {
		t.Error("nil never matches a code")
	}
}

func TestContextString(t *testing.T) {
	err := New(ErrArgInvalid, CategoryValidation, "bad").
		WithContext("token", "abc").
		WithContext("expected", "int")

	want := `expected="int", token="abc"`
	if got := err.ContextString(); got != want {
		t.Errorf("ContextString() = %q, want %q", got, want)
	}
	if New("X", CategoryInternal, "y").ContextString() != "" {
		t.Error("expected empty context string")
	}
}

func TestCommandNotFound(t *testing.T) {
	err := CommandNotFound("frobnicate")

	if err.Context[ContextCommand] != "frobnicate" {
		t.Errorf("expected command context, got %v", err.Context)
	}
	if !err.HasSuggestions() {
		t.Error("expected suggestions to be attached")
	}
	if err.Suggestions[0] != "Type 'help' to list the available commands" {
		t.Errorf("expected highest priority suggestion first, got %q", err.Suggestions[0])
	}
}
