// irpl - interactive shell with nested sessions
//
// irpl reads one command per line, validates its typed arguments and runs
// it. The "new" command opens a nested session on the same input; a
// critical failure anywhere ends every session and exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/r3d91ll/irpl/pkg/builtins"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
)

// Process exit codes.
const (
	exitOK       = 0
	exitCritical = 1
	exitUsage    = 2
)

type options struct {
	configPath string
	initConfig bool
	noHints    bool
	verbose    bool
}

// usageError marks a bad command line, which exits with exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line argv and returns the process exit code.
func execute(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(argv, stdin, stdout, stderr)
	cmd.SetArgs(argv[1:])

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	switch code {
	case exitUsage:
		fmt.Fprintf(stderr, "%v\n\n", err)
		fmt.Fprintf(stderr, "irpl v%s\n", builtins.Version)
		fmt.Fprint(stderr, cmd.UsageString())
	case exitCritical:
		ierrors.NewFormatter(stderr, true).Report("irpl", err)
	}
	return code
}

func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usage):
		return exitUsage
	default:
		return exitCritical
	}
}

func newRootCmd(argv []string, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "irpl",
		Short: "Interactive shell with typed commands and nested sessions",
		Long: `irpl reads one command per line and runs it.

Type 'help' at the prompt for the command list, 'new <name>' to open a
nested session and 'quit' or Ctrl+D to leave the current one.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("wrong number of args: %d, expected 0", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, argv, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file path (default: ./irpl.yaml)")
	flags.BoolVar(&opts.initConfig, "init", false, "Initialize default config file")
	flags.BoolVar(&opts.noHints, "no-hints", false, "Disable inline argument hints")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug events to stderr")

	cmd.AddCommand(newVersionCmd(stdout))
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and exit",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(stdout, "irpl v%s\n", builtins.Version)
		},
	}
}
