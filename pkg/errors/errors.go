// Package errors provides structured error types for irpl.
// Errors include context, causes, and actionable suggestions.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryConfig     Category = "config"     // Configuration loading/parsing errors
	CategoryCommand    Category = "command"    // Registry and dispatch errors
	CategoryValidation Category = "validation" // Argument validation errors
	CategorySession    Category = "session"    // Session lifecycle errors
	CategoryIO         Category = "io"         // File/IO errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// IrplError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type IrplError struct {
	// Code is a unique identifier for this error type (e.g., "COMMAND_NOT_FOUND")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *IrplError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *IrplError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two IrplErrors match if they have the same Code.
func (e *IrplError) Is(target error) bool {
	if t, ok := target.(*IrplError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new IrplError with the given code, category, and message.
func New(code string, category Category, message string) *IrplError {
	return &IrplError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *IrplError) WithContext(key, value string) *IrplError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *IrplError) WithCause(cause error) *IrplError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *IrplError) WithSuggestion(suggestion string) *IrplError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// HasContext returns true if the error has context information.
func (e *IrplError) HasContext() bool {
	return len(e.Context) > 0
}

// HasSuggestions returns true if the error has suggestions.
func (e *IrplError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// ContextString returns the context entries as sorted key="value" pairs.
func (e *IrplError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, e.Context[k]))
	}
	return strings.Join(parts, ", ")
}

// Wrap wraps an existing error with an IrplError.
func Wrap(err error, code string, category Category, message string) *IrplError {
	return New(code, category, message).WithCause(err)
}

// AsIrplError attempts to convert an error to an IrplError.
// Unlike errors.As it only inspects the outermost error, so a wrapped
// IrplError deeper in the chain is reported by its wrapper.
func AsIrplError(err error) (*IrplError, bool) {
	if err == nil {
		return nil, false
	}
	if ie, ok := err.(*IrplError); ok {
		return ie, true
	}
	return nil, false
}

// IsCategory checks if an error is an IrplError with the given category.
func IsCategory(err error, category Category) bool {
	if ie, ok := AsIrplError(err); ok {
		return ie.Category == category
	}
	return false
}

// IsCode checks if an error is an IrplError with the given code.
func IsCode(err error, code string) bool {
	if ie, ok := AsIrplError(err); ok {
		return ie.Code == code
	}
	return false
}
