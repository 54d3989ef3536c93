package builtins

import (
	"context"
	"fmt"
	"os"

	"github.com/r3d91ll/irpl/pkg/command"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
	"github.com/r3d91ll/irpl/pkg/help"
)

// stateOutX is the State key used by outx.
const stateOutX = "outx"

func sessionCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "new",
			Description: "Enter new repl",
			Params:      []command.Param{command.Arg("name", command.String)},
			Handler:     newSession,
		},
		{
			Name:        "help",
			Description: "List every command with its arguments",
			Handler:     helpAll,
		},
		{
			Name:        "usage",
			Description: "Show usage for one command",
			Params:      []command.Param{command.Arg("cmd", command.String)},
			Handler:     usage,
		},
		{
			Name:        "quit",
			Description: "Leave the current repl",
			Handler: func(context.Context, *command.Invocation, command.Args) command.Outcome {
				return command.Quit()
			},
		},
		{
			Name:        "memdump",
			Description: "Display irpl_symbols",
			Handler:     memdump,
		},
		{
			Name:        "set",
			Description: "Set a symbol in this repl only",
			Params: []command.Param{
				command.Arg("key", command.String),
				command.Arg("value", command.String),
			},
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				inv.Symbols.Set(args.String(0), args.String(1))
				return command.Done()
			},
		},
		{
			Name:        "version",
			Description: "Display current irpl version",
			Handler: func(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
				fmt.Fprintf(inv.Out, "irpl v%s\n", Version)
				return command.Done()
			},
		},
		{
			Name: "outx",
			Description: "Use mutably outside var x. This command has a really long description " +
				"so we need to wrap it somehow, it is interesting how actually the wrapping will be performed.",
			Handler: outx,
		},
	}
}

// newSession runs a nested repl to completion. Whatever ends the child with
// an error ends this session as well.
func newSession(ctx context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	fmt.Fprintf(inv.Out, "irpl - started at %s\n", inv.Started.Format("2006-01-02 15:04:05.000000"))
	if err := inv.Spawn(ctx, args.String(0)); err != nil {
		return command.Critical(err)
	}
	return command.Done()
}

func helpAll(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
	renderer(inv).RenderFull("irpl commands", inv.Registry.List())
	return command.Done()
}

func usage(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	spec, ok := inv.Registry.Lookup(args.String(0))
	if !ok {
		return command.Fail(ierrors.CommandNotFound(args.String(0)))
	}
	renderer(inv).RenderCommand(spec)
	return command.Done()
}

func renderer(inv *command.Invocation) *help.Renderer {
	f, ok := inv.Out.(*os.File)
	return help.NewRenderer(inv.Out, ok && ierrors.IsTTY(f))
}

func memdump(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
	for _, key := range inv.Symbols.Keys() {
		value, _ := inv.Symbols.Get(key)
		fmt.Fprintf(inv.Out, "%s: \"%s\"\n", key, value)
	}
	return command.Done()
}

func outx(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
	x := inv.State.Value(stateOutX, "Out x") + "x"
	inv.State.Set(stateOutX, x)
	fmt.Fprintln(inv.Out, x)
	return command.Done()
}
