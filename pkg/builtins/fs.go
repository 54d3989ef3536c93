package builtins

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/r3d91ll/irpl/pkg/command"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
)

func fsCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "test[-f]",
			Description: "Test if arg is file or dir",
			Params:      []command.Param{command.Arg("arg", command.Path)},
			Handler:     testFile,
		},
		{
			Name:        "du",
			Description: "Shows file size",
			Params:      []command.Param{command.Arg("arg", command.Path)},
			Handler:     du,
		},
		{
			Name:        "ls",
			Description: "List files in a directory",
			Params:      []command.Param{command.Arg("dir", command.Path)},
			Handler:     ls,
		},
		{
			Name:        "ipaddr",
			Description: "Just parse and print the given IP address",
			Params:      []command.Param{command.Arg("ip", command.IP)},
			Handler: func(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
				fmt.Fprintln(inv.Out, args.IP(0))
				return command.Done()
			},
		},
	}
}

// testFile classifies by spelling only: a path containing a separator is a
// file, anything else a directory. The filesystem is not consulted.
func testFile(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	p := args.Path(0)
	kind := "Directory"
	if strings.Contains(p, "/") {
		kind = "File"
	}
	fmt.Fprintf(inv.Out, "%s is a %s\n", p, kind)
	return command.Done()
}

func du(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	p := args.Path(0)
	info, err := os.Stat(p)
	if err != nil {
		return command.Fail(ierrors.IOWrap(err, ierrors.ErrIOStatFailed, "cannot read file size").
			WithContext(ierrors.ContextPath, p))
	}
	fmt.Fprintf(inv.Out, "Size for %s is %d\n", p, info.Size())
	return command.Done()
}

func ls(_ context.Context, inv *command.Invocation, args command.Args) command.Outcome {
	dir := args.Path(0)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return command.Fail(ierrors.IOWrap(err, ierrors.ErrIOReadFailed, "cannot list directory").
			WithContext(ierrors.ContextPath, dir))
	}
	for _, entry := range entries {
		fmt.Fprintln(inv.Out, filepath.Join(dir, entry.Name()))
	}
	return command.Done()
}
