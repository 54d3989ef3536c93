// Package builtins provides the commands every irpl session is built with.
//
// Handlers write results to the invocation's Out and decide their own
// severity: Fail keeps the session running, Critical ends it and every
// session above it.
package builtins

import (
	"github.com/r3d91ll/irpl/pkg/command"
)

// Version is the irpl release, overridable at link time.
var Version = "0.4.0"

// Registry returns a new registry holding all builtin commands in listing order.
func Registry() *command.Registry {
	reg := command.NewRegistry()
	Register(reg)
	return reg
}

// Register adds every builtin command to reg. It panics if a name is
// already taken or reg is frozen.
func Register(reg *command.Registry) {
	reg.MustRegister(sessionCommands()...)
	reg.MustRegister(clockCommands()...)
	reg.MustRegister(mathCommands()...)
	reg.MustRegister(fsCommands()...)
	reg.MustRegister(outcomeCommands()...)
	reg.MustRegister(textCommands()...)
	reg.MustRegister(terminalCommands()...)
}
