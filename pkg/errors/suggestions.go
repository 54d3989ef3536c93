// Package errors provides a suggestions registry for error remediation.
// Maps error codes to context-aware suggestions that help users fix issues.
package errors

import (
	"runtime"
	"sort"
)

// ContextOS is the context key for the operating system ("linux", "darwin", "windows").
const ContextOS = "os"

// OS values for platform-specific suggestions.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Suggestion represents a remediation suggestion with optional conditions.
type Suggestion struct {
	// Text is the suggestion message displayed to the user.
	Text string

	// Conditions must all match the error context for the suggestion to apply.
	// Empty conditions match any context.
	Conditions map[string]string

	// Priority determines order when multiple suggestions apply (highest first).
	Priority int
}

// Matches returns true if this suggestion's conditions match the given context.
func (s *Suggestion) Matches(ctx map[string]string) bool {
	for key, value := range s.Conditions {
		if ctx[key] != value {
			return false
		}
	}
	return true
}

// Registry maps error codes to their remediation suggestions.
type Registry struct {
	suggestions map[string][]Suggestion
}

// NewRegistry creates a new suggestion registry.
func NewRegistry() *Registry {
	return &Registry{
		suggestions: make(map[string][]Suggestion),
	}
}

// Register adds a suggestion for an error code.
func (r *Registry) Register(code, text string) *Registry {
	return r.RegisterSuggestion(code, Suggestion{Text: text})
}

// RegisterWithCondition adds a suggestion that only applies when the context matches.
func (r *Registry) RegisterWithCondition(code, text string, conditions map[string]string) *Registry {
	return r.RegisterSuggestion(code, Suggestion{Text: text, Conditions: conditions})
}

// RegisterSuggestion adds a complete Suggestion struct.
func (r *Registry) RegisterSuggestion(code string, suggestion Suggestion) *Registry {
	r.suggestions[code] = append(r.suggestions[code], suggestion)
	return r
}

// Get returns the suggestion texts for code that match ctx, highest priority first.
func (r *Registry) Get(code string, ctx map[string]string) []string {
	var matching []Suggestion
	for _, s := range r.suggestions[code] {
		if s.Matches(ctx) {
			matching = append(matching, s)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Priority > matching[j].Priority
	})

	result := make([]string, len(matching))
	for i, s := range matching {
		result[i] = s.Text
	}
	return result
}

// HasSuggestions returns true if any suggestions exist for the error code.
func (r *Registry) HasSuggestions(code string) bool {
	return len(r.suggestions[code]) > 0
}

// MergeContext combines multiple context maps into one.
// Later maps override earlier ones for duplicate keys.
func MergeContext(contexts ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, ctx := range contexts {
		for k, v := range ctx {
			result[k] = v
		}
	}
	return result
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// AttachSuggestions appends the default registry's suggestions for err.Code,
// matched against the platform and the error's own context.
func AttachSuggestions(err *IrplError) *IrplError {
	if err == nil {
		return nil
	}
	ctx := MergeContext(map[string]string{ContextOS: runtime.GOOS}, err.Context)
	if suggestions := defaultRegistry.Get(err.Code, ctx); len(suggestions) > 0 {
		err.Suggestions = append(err.Suggestions, suggestions...)
	}
	return err
}

func init() {
	defaultRegistry.Register(ErrConfigParseFailed,
		"Check your config file for YAML syntax errors")
	defaultRegistry.Register(ErrConfigParseFailed,
		"Common issues: incorrect indentation, missing colons, or unquoted special characters")
	defaultRegistry.Register(ErrConfigInvalid,
		"Run 'irpl --init' to write a config file with valid defaults")
	defaultRegistry.Register(ErrConfigReadFailed,
		"Check file permissions on the config file")
	defaultRegistry.RegisterWithCondition(ErrConfigWriteFailed,
		"Check that %APPDATA% is writable",
		map[string]string{ContextOS: OSWindows})
	defaultRegistry.Register(ErrConfigWriteFailed,
		"Check that the target directory exists and is writable")

	defaultRegistry.RegisterSuggestion(ErrCommandNotFound, Suggestion{
		Text:     "Type 'help' to list the available commands",
		Priority: 10,
	})
	defaultRegistry.Register(ErrCommandNotFound,
		"Command names are case-sensitive and must be typed in full")
	defaultRegistry.Register(ErrCommandInvalidSyntax,
		"Close every single or double quote on the line")

	defaultRegistry.Register(ErrArgCount,
		"Type 'usage <command>' to see the expected arguments")
	defaultRegistry.Register(ErrArgInvalid,
		"Type 'usage <command>' to see the expected argument types")

	defaultRegistry.Register(ErrIOReadFailed,
		"Check that the path exists and is readable")
	defaultRegistry.Register(ErrIOStatFailed,
		"Check that the path exists")
}
