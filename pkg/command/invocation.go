package command

import (
	"context"
	"io"
	"time"

	"github.com/r3d91ll/irpl/pkg/symbols"
)

// Invocation is what a handler can see of the session that called it.
type Invocation struct {
	// Command is the name the handler was invoked under.
	Command string

	Out io.Writer
	Err io.Writer

	// Symbols is the calling session's own environment.
	Symbols *symbols.Env

	// State is session-scoped scratch space that outlives a single invocation.
	State *State

	// Started is the session's construction instant. It carries a monotonic
	// reading, so time.Since(Started) is immune to wall clock changes.
	Started time.Time

	// Registry is the frozen registry the session dispatches from.
	Registry *Registry

	// ReadLine reads the next raw line from the session's input.
	ReadLine func() (string, error)

	// Spawn runs a nested session named after the caller's prompt plus name,
	// and returns its terminating error.
	Spawn func(ctx context.Context, name string) error
}

// State is per-session mutable storage for handlers.
type State struct {
	values map[string]string
}

// NewState returns empty state.
func NewState() *State {
	return &State{values: make(map[string]string)}
}

// Value returns the stored value for key, or def when unset.
func (s *State) Value(key, def string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Set stores value under key.
func (s *State) Set(key, value string) {
	s.values[key] = value
}
