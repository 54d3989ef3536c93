package builtins

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/r3d91ll/irpl/pkg/command"
)

func mathCommands() []command.Spec {
	xy := []command.Param{command.Arg("X", command.Int), command.Arg("Y", command.Int)}
	return []command.Spec{
		{
			Name:        "rand",
			Description: "Echoes a random num between the two passed values",
			Params:      []command.Param{command.Arg("min", command.Float), command.Arg("max", command.Float)},
			Handler:     randRange,
		},
		{
			Name:        "bc",
			Description: "Basic calculator",
			Params:      []command.Param{command.Arg("expr", command.String)},
			Handler:     bc,
		},
		{
			Name:        "add",
			Description: "Add X to Y",
			Params:      xy,
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				x, y := int64(args.Int(0)), int64(args.Int(1))
				fmt.Fprintf(inv.Out, "%d + %d = %d\n", x, y, x+y)
				return command.Done()
			},
		},
		{
			Name:        "sub",
			Description: "Sub X from Y",
			Params:      xy,
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				x, y := int64(args.Int(0)), int64(args.Int(1))
				fmt.Fprintf(inv.Out, "%d - %d = %d\n", x, y, x-y)
				return command.Done()
			},
		},
		{
			Name:        "count",
			Description: "Count from X to Y",
			Params:      xy,
			Handler:     count,
		},
		{
			Name:        "say",
			Description: "Say X",
			Params:      []command.Param{command.Anon(command.Float32)},
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				fmt.Fprintf(inv.Out, "x is equal to %v\n", args.Float32(0))
				return command.Done()
			},
		},
	}
}

func randRange(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	lo, hi := args.Float(0), args.Float(1)
	if lo >= hi {
		return command.Failf("empty range: min %v must be less than max %v", lo, hi)
	}
	fmt.Fprintln(inv.Out, lo+rand.Float64()*(hi-lo))
	return command.Done()
}

// bc evaluates an arithmetic expression. The expression language has no
// access to the environment.
func bc(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	input := args.String(0)
	if strings.TrimSpace(input) == "" {
		return command.Failf("empty expression")
	}
	value, err := expr.Eval(input, nil)
	if err != nil {
		return command.Fail(err)
	}
	fmt.Fprintf(inv.Out, "%s == %v\n", input, value)
	return command.Done()
}

func count(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	var sb strings.Builder
	for i := int64(args.Int(0)); i <= int64(args.Int(1)); i++ {
		fmt.Fprintf(&sb, " %d", i)
	}
	sb.WriteByte('\n')
	_, err := fmt.Fprint(inv.Out, sb.String())
	return command.Fail(err)
}
