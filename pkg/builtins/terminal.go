package builtins

import (
	"context"
	"fmt"

	"github.com/r3d91ll/irpl/pkg/command"
)

// clearScreen erases the display and the scrollback, then homes the cursor.
const clearScreen = "\033[H\033[2J\033[3J"

func terminalCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "echo",
			Description: "Echoes back",
			Params:      []command.Param{command.Arg("name", command.String)},
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				fmt.Fprintln(inv.Out, args.String(0))
				return command.Done()
			},
		},
		{
			Name:        "clear",
			Description: "Clear the screen",
			Handler: func(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
				fmt.Fprint(inv.Out, clearScreen)
				return command.Done()
			},
		},
	}
}
