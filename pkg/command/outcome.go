package command

import (
	stderrors "errors"
	"fmt"
)

// Status classifies how a command invocation ended.
type Status int

const (
	// StatusDone means the command completed; the loop continues.
	StatusDone Status = iota
	// StatusQuit asks the session to end normally.
	StatusQuit
	// StatusFailed is a recoverable failure; it is reported and the loop continues.
	StatusFailed
	// StatusCritical ends the session and is returned to its caller.
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusQuit:
		return "quit"
	case StatusFailed:
		return "failed"
	case StatusCritical:
		return "critical"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the result of one command invocation.
type Outcome struct {
	Status Status
	Err    error
}

// Done reports successful completion.
func Done() Outcome { return Outcome{Status: StatusDone} }

// Quit asks the current session to end without error.
func Quit() Outcome { return Outcome{Status: StatusQuit} }

// Fail reports a recoverable failure. A nil err is treated as Done.
func Fail(err error) Outcome {
	if err == nil {
		return Done()
	}
	return Outcome{Status: StatusFailed, Err: err}
}

// Failf reports a recoverable failure with a formatted message.
func Failf(format string, args ...any) Outcome {
	return Fail(fmt.Errorf(format, args...))
}

// Critical reports a failure that terminates the session. A nil err is
// replaced by a generic error so the session still terminates.
func Critical(err error) Outcome {
	if err == nil {
		err = stderrors.New("critical failure")
	}
	return Outcome{Status: StatusCritical, Err: err}
}

// Criticalf reports a critical failure with a formatted message.
func Criticalf(format string, args ...any) Outcome {
	return Critical(fmt.Errorf(format, args...))
}

// Continues reports whether the session loop keeps running after o.
func (o Outcome) Continues() bool {
	return o.Status == StatusDone || o.Status == StatusFailed
}
