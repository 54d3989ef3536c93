// Package symbols holds the diagnostic key/value environment a session exposes
// to introspection commands.
//
// An Env is never shared between sessions. A child session receives a
// Snapshot of the values its parent was constructed from, so later writes on
// either side stay invisible to the other.
package symbols

import (
	"maps"
	"slices"
)

// Keys injected by the process entry point and by each session.
const (
	KeyVersion   = "irpl_vers"
	KeyStartSecs = "irpl_start_secs"
	KeySessionID = "irpl_session_id"

	KeyMainStartSecs = "main_start_secs"
	KeyMainWorkPath  = "main_workpath"
	KeyMainArgPrefix = "main_arg"
)

// Env maps symbol names to string values. The zero value is ready to use.
type Env struct {
	vars map[string]string
}

// New returns an Env holding a copy of initial.
func New(initial map[string]string) *Env {
	return &Env{vars: maps.Clone(initial)}
}

// Get returns the value stored under key.
func (e *Env) Get(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.vars[key]
	return v, ok
}

// Set stores value under key.
func (e *Env) Set(key, value string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[key] = value
}

// Len returns the number of symbols.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}

// Keys returns the symbol names in lexical order.
func (e *Env) Keys() []string {
	if e == nil {
		return nil
	}
	var keys []string
	for k := range e.vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot returns an independent deep copy of e.
func (e *Env) Snapshot() *Env {
	if e == nil {
		return &Env{}
	}
	return New(e.vars)
}

// Map returns a copy of the symbols as a plain map.
func (e *Env) Map() map[string]string {
	if e == nil {
		return map[string]string{}
	}
	m := maps.Clone(e.vars)
	if m == nil {
		m = map[string]string{}
	}
	return m
}
