// Package shell provides the interactive REPL session for irpl.
package shell

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/r3d91ll/irpl/pkg/command"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
	"github.com/r3d91ll/irpl/pkg/symbols"
)

// dispatchTag marks reports produced by the session itself rather than a handler.
const dispatchTag = "irpl"

// Config holds session configuration.
type Config struct {
	// Name is shown in the prompt as "[Name]> ".
	Name string

	// Hints enables the inline parameter hint while typing.
	Hints bool

	HistoryFile  string
	HistoryLimit int

	// Color allows ANSI colors in error reports when stderr is a terminal.
	Color bool

	// Nil streams default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives diagnostic events. Nil means no logging.
	Logger *zap.Logger

	// Input overrides the line reader. When nil one is created from Stdin.
	Input LineReader
}

// Session is one running read-dispatch loop.
type Session struct {
	id       string
	name     string
	prompt   string
	depth    int
	registry *command.Registry

	// seed is the environment this session was built from. Children are
	// seeded from a copy of it, never from env.
	seed *symbols.Env
	env  *symbols.Env

	state   *command.State
	started time.Time
	hints   bool

	in        LineReader
	ownsInput bool
	out       io.Writer
	errOut    io.Writer
	report    *ierrors.Formatter
	log       *zap.Logger
}

// CriticalError is returned by Run when a command reports a critical failure.
// When the failure happened in a nested session, Err is the child's
// CriticalError, so the chain records every session that was unwound.
type CriticalError struct {
	Session string
	Command string
	Err     error
}

func (e *CriticalError) Error() string {
	return fmt.Sprintf("critical failure in %s (%s): %v", e.Session, e.Command, e.Err)
}

func (e *CriticalError) Unwrap() error { return e.Err }

// Origin returns the innermost CriticalError, i.e. the session where the
// failure was first reported.
func (e *CriticalError) Origin() *CriticalError {
	origin := e
	for {
		var next *CriticalError
		if !stderrors.As(origin.Err, &next) {
			return origin
		}
		origin = next
	}
}

// Depth returns how many sessions the failure unwound, including the origin.
func (e *CriticalError) Depth() int {
	depth := 1
	cur := e
	for {
		var next *CriticalError
		if !stderrors.As(cur.Err, &next) {
			return depth
		}
		depth++
		cur = next
	}
}

// New creates a top-level session. The registry is frozen; seed is copied.
func New(cfg Config, registry *command.Registry, seed *symbols.Env) (*Session, error) {
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	registry.Freeze()

	in := cfg.Input
	owns := false
	if in == nil {
		var painter readline.Painter
		if cfg.Hints {
			painter = &hintPainter{hinter: NewHinter(registry)}
		}
		var err error
		in, err = newLineReader(cfg, NewShellCompleter(registry), painter)
		if err != nil {
			return nil, ierrors.SessionWrap(err, ierrors.ErrSessionReaderFailed, "failed to initialize line reader")
		}
		owns = true
	}

	s := newSession(cfg.Name, 0, registry, seed.Snapshot(), cfg.Hints)
	s.in = in
	s.ownsInput = owns
	s.out = cfg.Stdout
	s.errOut = cfg.Stderr
	s.report = ierrors.NewFormatter(cfg.Stderr, cfg.Color)
	s.log = cfg.Logger
	return s, nil
}

func newSession(name string, depth int, registry *command.Registry, seed *symbols.Env, hints bool) *Session {
	started := time.Now()
	id := uuid.NewString()

	env := seed.Snapshot()
	env.Set(symbols.KeyStartSecs, strconv.FormatInt(started.Unix(), 10))
	env.Set(symbols.KeySessionID, id)

	return &Session{
		id:       id,
		name:     name,
		prompt:   fmt.Sprintf("[%s]> ", name),
		depth:    depth,
		registry: registry,
		seed:     seed,
		env:      env,
		state:    command.NewState(),
		started:  started,
		hints:    hints,
	}
}

// child builds a nested session that shares this session's input, output and
// registry, seeded from a copy of this session's seed.
func (s *Session) child(name string) *Session {
	c := newSession(name, s.depth+1, s.registry, s.seed.Snapshot(), s.hints)
	c.in = s.in
	c.out = s.out
	c.errOut = s.errOut
	c.report = s.report
	c.log = s.log
	return c
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Name returns the session name.
func (s *Session) Name() string { return s.name }

// Prompt returns the prompt string, "[name]> ".
func (s *Session) Prompt() string { return s.prompt }

// Depth returns the nesting level, 0 for the top-level session.
func (s *Session) Depth() int { return s.depth }

// Symbols returns the session's own environment.
func (s *Session) Symbols() *symbols.Env { return s.env }

// Run reads and dispatches lines until end of input, a quit outcome, or a
// critical failure. End of input and quit return nil. A critical failure
// returns *CriticalError. Cancellation is checked between lines only.
func (s *Session) Run(ctx context.Context) error {
	if s.ownsInput {
		defer s.in.Close()
	}

	log := s.log.With(
		zap.String("session", s.name),
		zap.String("session_id", s.id),
		zap.Int("depth", s.depth),
	)
	log.Info("session started")

	for {
		select {
		case <-ctx.Done():
			log.Info("session cancelled")
			return ctx.Err()
		default:
		}

		s.in.SetPrompt(s.prompt)
		line, err := s.in.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				log.Info("session ended", zap.String("reason", "eof"))
				return nil
			}
			return ierrors.SessionWrap(err, ierrors.ErrSessionInputFailed, "failed to read input")
		}

		name, outcome := s.Execute(ctx, line)

		switch outcome.Status {
		case command.StatusQuit:
			log.Info("session ended", zap.String("reason", "quit"))
			return nil
		case command.StatusCritical:
			var nested *CriticalError
			if stderrors.As(outcome.Err, &nested) {
				log.Warn("unwinding after nested critical failure",
					zap.String("command", name), zap.String("origin", nested.Origin().Session))
			} else {
				log.Error("critical failure", zap.String("command", name), zap.Error(outcome.Err))
			}
			return &CriticalError{Session: s.prompt, Command: name, Err: outcome.Err}
		}
	}
}

// Execute tokenizes and dispatches a single line. It reports recoverable
// failures, and critical failures that originate here, to stderr, and returns
// the command name together with the outcome. Blank lines are Done.
func (s *Session) Execute(ctx context.Context, line string) (string, command.Outcome) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return "", s.fail(dispatchTag, ierrors.InvalidSyntax(line, err))
	}
	if len(tokens) == 0 {
		return "", command.Done()
	}

	name := tokens[0]
	spec, ok := s.registry.Lookup(name)
	if !ok {
		return name, s.fail(dispatchTag, ierrors.CommandNotFound(name))
	}

	args, err := command.Validate(spec.Params, tokens[1:])
	if err != nil {
		if ie, ok := ierrors.AsIrplError(err); ok {
			ie.WithContext(ierrors.ContextCommand, name).
				WithContext(ierrors.ContextUsage, spec.Usage())
		}
		return name, s.fail(dispatchTag, err)
	}

	begin := time.Now()
	outcome := s.invoke(ctx, spec, args)
	s.log.Debug("command dispatched",
		zap.String("session_id", s.id),
		zap.String("command", name),
		zap.Stringer("status", outcome.Status),
		zap.Duration("elapsed", time.Since(begin)))

	switch outcome.Status {
	case command.StatusFailed:
		s.fail(name, outcome.Err)
	case command.StatusCritical:
		var nested *CriticalError
		if !stderrors.As(outcome.Err, &nested) {
			s.report.Report(name, outcome.Err)
		}
	}
	return name, outcome
}

func (s *Session) fail(tag string, err error) command.Outcome {
	s.log.Warn("recoverable failure",
		zap.String("session_id", s.id),
		zap.String("tag", tag),
		zap.Error(err))
	s.report.Report(tag, err)
	return command.Fail(err)
}

// invoke runs the handler. A panicking handler is treated as critical.
func (s *Session) invoke(ctx context.Context, spec command.Spec, args command.Args) (outcome command.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = command.Critical(ierrors.InternalPanic(r).WithContext(ierrors.ContextCommand, spec.Name))
		}
	}()

	inv := &command.Invocation{
		Command:  spec.Name,
		Out:      s.out,
		Err:      s.errOut,
		Symbols:  s.env,
		State:    s.state,
		Started:  s.started,
		Registry: s.registry,
		ReadLine: s.readRaw,
		Spawn:    s.spawn,
	}
	return spec.Handler(ctx, inv, args)
}

func (s *Session) readRaw() (string, error) {
	s.in.SetPrompt("")
	return s.in.Readline()
}

// spawn runs a nested session to completion on the caller's stack.
func (s *Session) spawn(ctx context.Context, name string) error {
	c := s.child(s.prompt + name)
	s.log.Info("spawning nested session",
		zap.String("parent_id", s.id),
		zap.String("child_id", c.id),
		zap.String("child", c.name))
	return c.Run(ctx)
}
