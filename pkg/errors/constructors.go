package errors

import "fmt"

// -----------------------------------------------------------------------------
// Smart Constructors with Auto-Attached Suggestions
// -----------------------------------------------------------------------------

// Config creates a configuration error with auto-attached suggestions.
func Config(code, message string) *IrplError {
	return AttachSuggestions(New(code, CategoryConfig, message))
}

// ConfigWrap wraps an error as a configuration error with auto-attached suggestions.
func ConfigWrap(cause error, code, message string) *IrplError {
	return AttachSuggestions(Wrap(cause, code, CategoryConfig, message))
}

// Command creates a command error with auto-attached suggestions.
func Command(code, message string) *IrplError {
	return AttachSuggestions(New(code, CategoryCommand, message))
}

// Commandf creates a command error with a formatted message.
func Commandf(code, format string, args ...interface{}) *IrplError {
	return Command(code, fmt.Sprintf(format, args...))
}

// Validationf creates a validation error with a formatted message.
// Suggestions are not attached here because callers usually add context first.
func Validationf(code, format string, args ...interface{}) *IrplError {
	return New(code, CategoryValidation, fmt.Sprintf(format, args...))
}

// IOWrap wraps an error as an IO error with auto-attached suggestions.
func IOWrap(cause error, code, message string) *IrplError {
	return AttachSuggestions(Wrap(cause, code, CategoryIO, message))
}

// SessionWrap wraps an error as a session error.
func SessionWrap(cause error, code, message string) *IrplError {
	return Wrap(cause, code, CategorySession, message)
}

// -----------------------------------------------------------------------------
// Specific constructors
// -----------------------------------------------------------------------------

// CommandNotFound creates the error reported for an unregistered command name.
func CommandNotFound(name string) *IrplError {
	return Command(ErrCommandNotFound, "unknown command").
		WithContext(ContextCommand, name)
}

// DuplicateCommand creates the error returned when a name is registered twice.
func DuplicateCommand(name string) *IrplError {
	return New(ErrCommandDuplicate, CategoryCommand,
		fmt.Sprintf("command %q already registered", name)).
		WithContext(ContextCommand, name)
}

// InvalidSyntax wraps a tokenizer failure.
func InvalidSyntax(line string, cause error) *IrplError {
	return AttachSuggestions(Wrap(cause, ErrCommandInvalidSyntax, CategoryCommand,
		"cannot split line into arguments")).
		WithContext("line", line)
}

// InternalPanic creates an error for a panic recovered from a handler.
func InternalPanic(recovered interface{}) *IrplError {
	return New(ErrInternalPanic, CategoryInternal,
		fmt.Sprintf("handler panicked: %v", recovered))
}
