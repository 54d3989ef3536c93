package builtins

import (
	"context"
	"errors"
	"time"

	"github.com/r3d91ll/irpl/pkg/command"
)

// sinceStart is replaced in tests to pick a roulette chamber.
var sinceStart = time.Since

func outcomeCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "ok",
			Description: "Run a command that just succeeds",
			Handler: func(context.Context, *command.Invocation, command.Args) command.Outcome {
				return command.Done()
			},
		},
		{
			Name:        "error",
			Description: "Command with recoverable error handled by the REPL",
			Params:      []command.Param{command.Arg("text", command.String)},
			Handler: func(_ context.Context, _ *command.Invocation, args command.Args) command.Outcome {
				return command.Fail(errors.New(args.String(0)))
			},
		},
		{
			Name:        "critical",
			Description: "Command returns a critical error that must be handled outside of REPL",
			Params:      []command.Param{command.Arg("text", command.String)},
			Handler: func(_ context.Context, _ *command.Invocation, args command.Args) command.Outcome {
				return command.Critical(errors.New(args.String(0)))
			},
		},
		{
			Name:        "roulette",
			Description: "Feeling lucky?",
			Handler:     roulette,
		},
	}
}

// roulette picks a chamber from the nanoseconds elapsed since the session
// started. It is not a random source.
func roulette(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
	switch sinceStart(inv.Started).Nanoseconds() % 6 {
	case 0:
		return command.Critical(errors.New("Bang!"))
	case 1, 2:
		return command.Fail(errors.New("Blank cartridge?"))
	}
	return command.Done()
}
