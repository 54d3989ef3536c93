package builtins

import (
	"context"
	"fmt"
	"time"

	"github.com/r3d91ll/irpl/pkg/command"
)

// now is replaced in tests.
var now = time.Now

func clockCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "date",
			Description: "Echoes current date and time",
			Handler:     printTime("2006-01-02 15:04:05"),
		},
		{
			Name:        "time",
			Description: "Echoes current time",
			Handler:     printTime("15:04:05"),
		},
		{
			Name:        "unixtime",
			Description: "Echoes elapsed seconds since UNIX epoch",
			Handler: func(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
				fmt.Fprintln(inv.Out, now().Unix())
				return command.Done()
			},
		},
	}
}

func printTime(layout string) command.Handler {
	return func(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
		fmt.Fprintln(inv.Out, now().Local().Format(layout))
		return command.Done()
	}
}
