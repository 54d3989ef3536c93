package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInitial(t *testing.T) {
	initial := map[string]string{"a": "1"}
	env := New(initial)

	initial["a"] = "changed"
	initial["b"] = "2"

	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = env.Get("b")
	assert.False(t, ok)
}

func TestSnapshotIsolation(t *testing.T) {
	parent := New(map[string]string{"shared": "yes"})
	child := parent.Snapshot()

	parent.Set("parent_only", "p")
	child.Set("child_only", "c")
	child.Set("shared", "overwritten")

	_, ok := child.Get("parent_only")
	assert.False(t, ok, "child must not observe parent writes after the snapshot")
	_, ok = parent.Get("child_only")
	assert.False(t, ok, "parent must not observe child writes")

	v, _ := parent.Get("shared")
	assert.Equal(t, "yes", v)
}

func TestZeroValueAndNil(t *testing.T) {
	var env Env
	env.Set("k", "v")
	assert.Equal(t, 1, env.Len())

	var nilEnv *Env
	assert.Equal(t, 0, nilEnv.Len())
	assert.Empty(t, nilEnv.Keys())
	assert.NotNil(t, nilEnv.Snapshot())
	assert.Equal(t, map[string]string{}, nilEnv.Map())
	_, ok := nilEnv.Get("k")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	env := New(map[string]string{"b": "2", "c": "3", "a": "1"})
	assert.Equal(t, []string{"a", "b", "c"}, env.Keys())
}

func TestMapReturnsCopy(t *testing.T) {
	env := New(map[string]string{"a": "1"})
	m := env.Map()
	m["a"] = "changed"

	v, _ := env.Get("a")
	assert.Equal(t, "1", v)
}
