// Package command defines what a shell command is: its typed parameter list,
// the validator that turns raw tokens into typed arguments, the outcome a
// handler reports, and the registry commands are looked up in.
package command

import (
	"context"
	"strings"
)

// Type is the declared type of a positional parameter.
type Type int

const (
	String  Type = iota // passed through unchanged
	Int                 // signed 32-bit integer
	Float               // 64-bit floating point
	Float32             // 32-bit floating point
	Path                // filesystem path, not checked for existence
	IP                  // IPv4 or IPv6 address literal
)

var typeNames = map[Type]string{
	String:  "string",
	Int:     "int",
	Float:   "float",
	Float32: "float32",
	Path:    "path",
	IP:      "ip",
}

// String returns the name used in help text and validation messages.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Param is one positional parameter. An empty Name makes the parameter
// anonymous; it is still required and only renders differently.
type Param struct {
	Name string
	Type Type
}

// Arg declares a named parameter.
func Arg(name string, t Type) Param {
	return Param{Name: name, Type: t}
}

// Anon declares an anonymous parameter.
func Anon(t Type) Param {
	return Param{Type: t}
}

// Signature renders the parameter as <name:type>, or <type> when anonymous.
func (p Param) Signature() string {
	if p.Name == "" {
		return "<" + p.Type.String() + ">"
	}
	return "<" + p.Name + ":" + p.Type.String() + ">"
}

// Handler runs a command with validated arguments and reports its outcome.
// The returned Outcome alone decides whether the session keeps going.
type Handler func(ctx context.Context, inv *Invocation, args Args) Outcome

// Spec is a registered command.
type Spec struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Signature renders all parameters separated by spaces.
func (s Spec) Signature() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Signature()
	}
	return strings.Join(parts, " ")
}

// Usage renders the command name followed by its signature.
func (s Spec) Usage() string {
	if len(s.Params) == 0 {
		return s.Name
	}
	return s.Name + " " + s.Signature()
}
