package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3d91ll/irpl/pkg/builtins"
	"github.com/r3d91ll/irpl/pkg/command"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
	"github.com/r3d91ll/irpl/pkg/symbols"
)

const topPrompt = "[irpl ]> "

type testSession struct {
	*Session
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestSession(t *testing.T, reg *command.Registry, input string, seed *symbols.Env) *testSession {
	t.Helper()
	ts := &testSession{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	s, err := New(Config{
		Name:   "irpl ",
		Stdin:  strings.NewReader(input),
		Stdout: ts.out,
		Stderr: ts.errOut,
	}, reg, seed)
	require.NoError(t, err)
	ts.Session = s
	return ts
}

// recordingRegistry registers argument-less commands that append their own
// name to calls.
func recordingRegistry(calls *[]string, names ...string) *command.Registry {
	reg := command.NewRegistry()
	for _, name := range names {
		name := name
		reg.MustRegister(command.Spec{
			Name: name,
			Handler: func(context.Context, *command.Invocation, command.Args) command.Outcome {
				*calls = append(*calls, name)
				return command.Done()
			},
		})
	}
	return reg
}

func TestNew(t *testing.T) {
	reg := builtins.Registry()
	seed := symbols.New(map[string]string{"k": "v"})
	ts := newTestSession(t, reg, "", seed)

	assert.True(t, reg.Frozen())
	assert.Equal(t, topPrompt, ts.Prompt())
	assert.Equal(t, 0, ts.Depth())
	assert.NotEmpty(t, ts.ID())

	v, _ := ts.Symbols().Get("k")
	assert.Equal(t, "v", v)
	id, _ := ts.Symbols().Get(symbols.KeySessionID)
	assert.Equal(t, ts.ID(), id)
	_, ok := ts.Symbols().Get(symbols.KeyStartSecs)
	assert.True(t, ok)

	// The caller's seed is copied, not adopted.
	ts.Symbols().Set("k", "changed")
	v, _ = seed.Get("k")
	assert.Equal(t, "v", v)
}

func TestExecute_ExactDispatch(t *testing.T) {
	var calls []string
	names := []string{"ad", "add", "adder", "Add"}
	ts := newTestSession(t, recordingRegistry(&calls, names...), "", nil)

	for _, name := range names {
		calls = nil
		_, outcome := ts.Execute(context.Background(), name)
		assert.Equal(t, command.StatusDone, outcome.Status)
		assert.Equal(t, []string{name}, calls, "dispatching %q", name)
	}

	calls = nil
	_, outcome := ts.Execute(context.Background(), "ADD")
	assert.Equal(t, command.StatusFailed, outcome.Status)
	assert.Empty(t, calls)
}

func TestExecute_UnknownCommand(t *testing.T) {
	var calls []string
	ts := newTestSession(t, recordingRegistry(&calls, "ok"), "", nil)

	name, outcome := ts.Execute(context.Background(), "nosuch arg")
	assert.Equal(t, "nosuch", name)
	assert.Equal(t, command.StatusFailed, outcome.Status)
	assert.True(t, ierrors.IsCode(outcome.Err, ierrors.ErrCommandNotFound))
	assert.Empty(t, calls)
	assert.Contains(t, ts.errOut.String(), "[irpl] ERROR [COMMAND_NOT_FOUND]: unknown command")
}

func TestExecute_Validation(t *testing.T) {
	var called bool
	reg := command.NewRegistry().MustRegister(command.Spec{
		Name:   "add",
		Params: []command.Param{command.Arg("X", command.Int), command.Arg("Y", command.Int)},
		Handler: func(context.Context, *command.Invocation, command.Args) command.Outcome {
			called = true
			return command.Done()
		},
	})

	tests := []struct {
		line string
		code string
	}{
		{"add", ierrors.ErrArgCount},
		{"add 1", ierrors.ErrArgCount},
		{"add 1 2 3", ierrors.ErrArgCount},
		{"add 1 x", ierrors.ErrArgInvalid},
		{"add 1.5 2", ierrors.ErrArgInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ts := newTestSession(t, reg, "", nil)
			_, outcome := ts.Execute(context.Background(), tt.line)
			assert.Equal(t, command.StatusFailed, outcome.Status)
			assert.True(t, ierrors.IsCode(outcome.Err, tt.code), "got %v", outcome.Err)
			assert.Contains(t, ts.errOut.String(), "usage: add <X:int> <Y:int>")
			assert.False(t, called)
		})
	}

	ts := newTestSession(t, reg, "", nil)
	ts.Execute(context.Background(), "add 1 x")
	assert.Contains(t, ts.errOut.String(), `cannot parse "x" as int`)
}

func TestExecute_Arithmetic(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"add 2 3", "2 + 3 = 5\n"},
		{"sub 10 4", "10 - 4 = 6\n"},
	}

	for _, tt := range tests {
		ts := newTestSession(t, builtins.Registry(), "", nil)
		_, outcome := ts.Execute(context.Background(), tt.line)
		assert.Equal(t, command.StatusDone, outcome.Status)
		assert.Equal(t, tt.want, ts.out.String())
		assert.Empty(t, ts.errOut.String())
	}
}

func TestExecute_QuotedArguments(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "", nil)

	_, outcome := ts.Execute(context.Background(), `echo "hello world"`)
	assert.Equal(t, command.StatusDone, outcome.Status)
	assert.Equal(t, "hello world\n", ts.out.String())

	_, outcome = ts.Execute(context.Background(), `echo "unterminated`)
	assert.Equal(t, command.StatusFailed, outcome.Status)
	assert.True(t, ierrors.IsCode(outcome.Err, ierrors.ErrCommandInvalidSyntax))
}

func TestRun_RecoverableFailureContinues(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "error boom\nadd 2 3\n", nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.Contains(t, ts.errOut.String(), "[error] Error: boom")
	assert.Contains(t, ts.out.String(), "2 + 3 = 5")
	// One prompt per line plus the one answered by end of input.
	assert.Equal(t, 3, strings.Count(ts.out.String(), topPrompt))
}

func TestRun_EmptyLinesAreIgnored(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "\n   \n\t\nadd 2 3\n", nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.Contains(t, ts.out.String(), "2 + 3 = 5")
	assert.Empty(t, ts.errOut.String())
}

func TestRun_CriticalTerminates(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "critical boom\nadd 2 3\n", nil)

	err := ts.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")

	var critical *CriticalError
	require.ErrorAs(t, err, &critical)
	assert.Equal(t, topPrompt, critical.Session)
	assert.Equal(t, "critical", critical.Command)
	assert.Equal(t, 1, critical.Depth())

	assert.NotContains(t, ts.out.String(), "2 + 3")
	assert.Equal(t, 1, strings.Count(ts.errOut.String(), "boom"))
}

func TestRun_QuitStopsReading(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "quit\nadd 2 3\n", nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.NotContains(t, ts.out.String(), "2 + 3")
}

func TestRun_NestedCriticalCascades(t *testing.T) {
	input := "new a\nnew b\ncritical boom\nadd 2 3\nadd 2 3\n"
	ts := newTestSession(t, builtins.Registry(), input, nil)

	err := ts.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")

	var critical *CriticalError
	require.ErrorAs(t, err, &critical)
	assert.Equal(t, topPrompt, critical.Session)
	assert.Equal(t, "new", critical.Command)
	assert.Equal(t, 3, critical.Depth())

	origin := critical.Origin()
	assert.Equal(t, "[[[irpl ]> a]> b]> ", origin.Session)
	assert.Equal(t, "critical", origin.Command)

	// No enclosing session kept reading, and only the origin reported it.
	assert.NotContains(t, ts.out.String(), "2 + 3")
	assert.Equal(t, 2, strings.Count(ts.out.String(), "irpl - started at"))
	assert.Equal(t, 1, strings.Count(ts.errOut.String(), "boom"))
}

func TestRun_NestedRecoverableStaysInChild(t *testing.T) {
	input := "new a\nerror boom\nquit\nadd 2 3\n"
	ts := newTestSession(t, builtins.Registry(), input, nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.Contains(t, ts.out.String(), "[[irpl ]> a]> ")
	assert.Contains(t, ts.out.String(), "2 + 3 = 5")
	assert.Contains(t, ts.errOut.String(), "[error] Error: boom")
}

func TestRun_EndOfInputInChildEndsAll(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "new a\n", nil)
	assert.NoError(t, ts.Run(context.Background()))
}

func TestRun_SnapshotIsolation(t *testing.T) {
	var captured []map[string]string
	reg := builtins.Registry()
	reg.MustRegister(command.Spec{
		Name: "capture",
		Handler: func(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
			captured = append(captured, inv.Symbols.Map())
			return command.Done()
		},
	})

	seed := symbols.New(map[string]string{"seeded": "1"})
	input := strings.Join([]string{
		"set parent_before spawn",
		"new a",
		"capture",
		"set child_key x",
		"capture",
		"quit",
		"set parent_after spawn",
		"capture",
	}, "\n") + "\n"
	ts := newTestSession(t, reg, input, seed)

	require.NoError(t, ts.Run(context.Background()))
	require.Len(t, captured, 3)
	child, childLater, parent := captured[0], captured[1], captured[2]

	assert.Equal(t, "1", child["seeded"])
	assert.NotContains(t, child, "parent_before")
	assert.NotContains(t, child, "parent_after")
	assert.NotEqual(t, parent[symbols.KeySessionID], child[symbols.KeySessionID])
	assert.Equal(t, "x", childLater["child_key"])

	assert.Equal(t, "spawn", parent["parent_before"])
	assert.Equal(t, "spawn", parent["parent_after"])
	assert.NotContains(t, parent, "child_key")

	_, leaked := seed.Get("parent_before")
	assert.False(t, leaked)
}

func TestRun_StatePerSession(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "outx\nnew a\noutx\nquit\noutx\n", nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(ts.out.String(), "Out xx\n"))
	assert.Equal(t, 1, strings.Count(ts.out.String(), "Out xxx\n"))
}

func TestRun_HandlerReadsSessionInput(t *testing.T) {
	ts := newTestSession(t, builtins.Registry(), "csurename\nHello World.TXT\n\nadd 2 3\n", nil)

	require.NoError(t, ts.Run(context.Background()))
	assert.Contains(t, ts.out.String(), "hello-world.txt\n")
	assert.Contains(t, ts.out.String(), "2 + 3 = 5")
}

func TestRun_PanicIsCritical(t *testing.T) {
	reg := command.NewRegistry().MustRegister(command.Spec{
		Name: "explode",
		Handler: func(context.Context, *command.Invocation, command.Args) command.Outcome {
			panic("kaboom")
		},
	})
	ts := newTestSession(t, reg, "explode\n", nil)

	err := ts.Run(context.Background())
	var ie *ierrors.IrplError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ierrors.ErrInternalPanic, ie.Code)
	assert.Contains(t, ts.errOut.String(), "kaboom")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ts := newTestSession(t, builtins.Registry(), "add 2 3\n", nil)
	assert.ErrorIs(t, ts.Run(ctx), context.Canceled)
	assert.NotContains(t, ts.out.String(), "2 + 3")
}

// scriptedReader returns canned results, then io.EOF.
type scriptedReader struct {
	results []readResult
	prompts []string
}

type readResult struct {
	line string
	err  error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.results) == 0 {
		return "", io.EOF
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res.line, res.err
}

func (r *scriptedReader) SetPrompt(prompt string) { r.prompts = append(r.prompts, prompt) }

func (r *scriptedReader) Close() error { return nil }

func TestRun_ReaderErrors(t *testing.T) {
	t.Run("interrupt discards the line", func(t *testing.T) {
		in := &scriptedReader{results: []readResult{{err: readline.ErrInterrupt}, {line: "add 2 3"}}}
		var out bytes.Buffer
		s, err := New(Config{Name: "irpl ", Input: in, Stdout: &out, Stderr: io.Discard}, builtins.Registry(), nil)
		require.NoError(t, err)

		require.NoError(t, s.Run(context.Background()))
		assert.Equal(t, "2 + 3 = 5\n", out.String())
		assert.Equal(t, []string{topPrompt, topPrompt, topPrompt}, in.prompts)
	})

	t.Run("read failure ends the session", func(t *testing.T) {
		in := &scriptedReader{results: []readResult{{err: errors.New("tty gone")}}}
		s, err := New(Config{Name: "irpl ", Input: in, Stdout: io.Discard, Stderr: io.Discard}, builtins.Registry(), nil)
		require.NoError(t, err)

		err = s.Run(context.Background())
		assert.True(t, ierrors.IsCode(err, ierrors.ErrSessionInputFailed))
		assert.ErrorContains(t, err, "tty gone")
	})
}

func TestNewPlainReader(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainReader(strings.NewReader("first\r\nlast"), &out)
	r.SetPrompt("> ")

	line, err := r.Readline()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.Readline()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.Readline()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}
