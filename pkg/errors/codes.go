package errors

// -----------------------------------------------------------------------------
// Configuration Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrConfigParseFailed indicates the configuration file could not be parsed.
	ErrConfigParseFailed = "CONFIG_PARSE_FAILED"

	// ErrConfigInvalid indicates configuration values are invalid.
	ErrConfigInvalid = "CONFIG_INVALID"

	// ErrConfigReadFailed indicates the config file exists but could not be read.
	ErrConfigReadFailed = "CONFIG_READ_FAILED"

	// ErrConfigWriteFailed indicates the config file could not be written.
	ErrConfigWriteFailed = "CONFIG_WRITE_FAILED"

	// ErrConfigEnvFailed indicates an environment override could not be applied.
	ErrConfigEnvFailed = "CONFIG_ENV_FAILED"
)

// -----------------------------------------------------------------------------
// Command Error Codes
// -----------------------------------------------------------------------------
// Registry construction and dispatch.

const (
	// ErrCommandDuplicate indicates a command with this name is already registered.
	ErrCommandDuplicate = "COMMAND_DUPLICATE"

	// ErrCommandInvalidSpec indicates a command spec cannot be registered
	// (empty name, whitespace in the name, or no handler).
	ErrCommandInvalidSpec = "COMMAND_INVALID_SPEC"

	// ErrRegistryFrozen indicates a registration after the registry was frozen.
	ErrRegistryFrozen = "REGISTRY_FROZEN"

	// ErrCommandNotFound indicates the command does not exist.
	ErrCommandNotFound = "COMMAND_NOT_FOUND"

	// ErrCommandInvalidSyntax indicates the line could not be tokenized.
	ErrCommandInvalidSyntax = "COMMAND_INVALID_SYNTAX"

	// ErrCommandFailed indicates a handler reported a failure.
	ErrCommandFailed = "COMMAND_FAILED"
)

// -----------------------------------------------------------------------------
// Argument Validation Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrArgCount indicates the number of tokens does not match the parameters.
	ErrArgCount = "ARG_COUNT"

	// ErrArgInvalid indicates a token could not be parsed as its declared type.
	ErrArgInvalid = "ARG_INVALID"
)

// -----------------------------------------------------------------------------
// Session Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrSessionInputFailed indicates reading the next line failed.
	ErrSessionInputFailed = "SESSION_INPUT_FAILED"

	// ErrSessionReaderFailed indicates the line reader could not be created.
	ErrSessionReaderFailed = "SESSION_READER_FAILED"
)

// -----------------------------------------------------------------------------
// I/O and Internal Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrIOReadFailed indicates a file or directory read failed.
	ErrIOReadFailed = "IO_READ_FAILED"

	// ErrIOStatFailed indicates file metadata could not be read.
	ErrIOStatFailed = "IO_STAT_FAILED"

	// ErrInternalPanic indicates a panic was recovered from a handler.
	ErrInternalPanic = "INTERNAL_PANIC"
)

// Context keys attached by the command and validation layers.
const (
	ContextCommand  = "command"
	ContextToken    = "token"
	ContextPosition = "position"
	ContextExpected = "expected"
	ContextActual   = "actual"
	ContextUsage    = "usage"
	ContextPath     = "path"
)
