package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3d91ll/irpl/pkg/errors"
)

func noop(context.Context, *Invocation, Args) Outcome { return Done() }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Spec{Name: "add", Params: []Param{Arg("X", Int), Arg("Y", Int)}, Handler: noop}))
	require.NoError(t, r.Register(Spec{Name: "echo", Params: []Param{Arg("name", String)}, Handler: noop}))

	spec, ok := r.Lookup("add")
	require.True(t, ok)
	assert.Equal(t, "add", spec.Name)
	assert.Len(t, spec.Params, 2)

	_, ok = r.Lookup("ad")
	assert.False(t, ok, "prefixes never match")
	_, ok = r.Lookup("ADD")
	assert.False(t, ok, "matching is case-sensitive")
	_, ok = r.Lookup("add ")
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Spec{Name: "echo", Handler: noop}))

	err := r.Register(Spec{Name: "echo", Description: "again", Handler: noop})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCommandDuplicate))
	assert.Equal(t, 1, r.Len())

	spec, _ := r.Lookup("echo")
	assert.Empty(t, spec.Description, "the first registration wins")
}

func TestRegistry_InvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"empty name", Spec{Handler: noop}},
		{"whitespace in name", Spec{Name: "two words", Handler: noop}},
		{"nil handler", Spec{Name: "nohandler"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.spec)
			assert.True(t, errors.IsCode(err, errors.ErrCommandInvalidSpec), "got %v", err)
		})
	}
}

func TestRegistry_Order(t *testing.T) {
	r := NewRegistry().MustRegister(
		Spec{Name: "zeta", Handler: noop},
		Spec{Name: "alpha", Handler: noop},
		Spec{Name: "mid", Handler: noop},
	)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, "mid", list[2].Name)
}

func TestRegistry_ListIsACopy(t *testing.T) {
	r := NewRegistry().MustRegister(Spec{Name: "a", Handler: noop})
	list := r.List()
	list[0].Name = "mutated"

	_, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "a", r.List()[0].Name)
}

func TestRegistry_ParamsCopiedOnRegister(t *testing.T) {
	params := []Param{Arg("X", Int)}
	r := NewRegistry().MustRegister(Spec{Name: "a", Params: params, Handler: noop})
	params[0].Type = String

	spec, _ := r.Lookup("a")
	assert.Equal(t, Int, spec.Params[0].Type)
}

func TestRegistry_Freeze(t *testing.T) {
	r := NewRegistry().MustRegister(Spec{Name: "a", Handler: noop})
	assert.False(t, r.Frozen())

	r.Freeze()
	r.Freeze()
	assert.True(t, r.Frozen())

	err := r.Register(Spec{Name: "b", Handler: noop})
	assert.True(t, errors.IsCode(err, errors.ErrRegistryFrozen))
	_, ok := r.Lookup("a")
	assert.True(t, ok, "lookups keep working once frozen")
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(Spec{Name: "x", Handler: noop}, Spec{Name: "x", Handler: noop})
	})
}
