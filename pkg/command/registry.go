package command

import (
	"strings"

	"github.com/r3d91ll/irpl/pkg/errors"
)

// Registry is an ordered, name-unique set of command specs.
// It is append-only until Freeze and read-only afterwards, so a frozen
// registry can be shared by any number of sessions.
type Registry struct {
	specs  []Spec
	index  map[string]int
	frozen bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register appends spec. It fails if the name is already taken, the spec is
// malformed, or the registry is frozen.
func (r *Registry) Register(spec Spec) error {
	if r.frozen {
		return errors.Commandf(errors.ErrRegistryFrozen,
			"cannot register %q: registry is frozen", spec.Name).
			WithContext(errors.ContextCommand, spec.Name)
	}
	if spec.Name == "" || strings.ContainsAny(spec.Name, " \t\r\n") {
		return errors.Commandf(errors.ErrCommandInvalidSpec,
			"invalid command name %q", spec.Name)
	}
	if spec.Handler == nil {
		return errors.Commandf(errors.ErrCommandInvalidSpec,
			"command %q has no handler", spec.Name).
			WithContext(errors.ContextCommand, spec.Name)
	}
	if _, exists := r.index[spec.Name]; exists {
		return errors.DuplicateCommand(spec.Name)
	}

	spec.Params = append([]Param(nil), spec.Params...)
	r.index[spec.Name] = len(r.specs)
	r.specs = append(r.specs, spec)
	return nil
}

// MustRegister registers every spec and panics on the first error.
// Use it for static command tables, where a failure is a programming error.
func (r *Registry) MustRegister(specs ...Spec) *Registry {
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup returns the spec registered under exactly name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	i, ok := r.index[name]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// List returns the specs in registration order.
func (r *Registry) List() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Names returns the command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Freeze makes the registry read-only. Freezing twice is a no-op.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}
