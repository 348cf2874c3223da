package stdout

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrSpawn          = errors.New("process could not be started")
	ErrNonZeroExit    = errors.New("process exited with a failure status")
	ErrSignaled       = errors.New("process was terminated by a signal")
	ErrStderr         = errors.New("process wrote to standard error")
	ErrTimeout        = errors.New("process timed out")
	ErrEmptyCommand   = errors.New("command is empty")
	ErrInvalidOptions = errors.New("invalid options")
)

// Kind classifies why a command was rejected.
type Kind int

const (
	KindSpawn Kind = iota
	KindExit
	KindSignal
	KindStderr
)

func (k Kind) String() string {
	switch k {
	case KindSpawn:
		return "spawn"
	case KindExit:
		return "exit"
	case KindSignal:
		return "signal"
	case KindStderr:
		return "stderr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindExit:
		return ErrNonZeroExit
	case KindSignal:
		return ErrSignaled
	case KindStderr:
		return ErrStderr
	default:
		return ErrSpawn
	}
}

// Error is returned by Shell and File for every rejected command.
// errors.Is matches it against the sentinel of its Kind, and against
// ErrTimeout and context.DeadlineExceeded when the timeout fired.
type Error struct {
	Kind     Kind
	Command  string
	Args     []string
	ExitCode int
	Signal   string
	Stderr   string
	TimedOut bool
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %q", e.commandLine())
	switch e.Kind {
	case KindSpawn:
		b.WriteString(" could not be started")
	case KindExit:
		fmt.Fprintf(&b, " exited with status %d", e.ExitCode)
	case KindSignal:
		if e.Signal != "" {
			fmt.Fprintf(&b, " was terminated by %s", e.Signal)
		} else {
			b.WriteString(" was terminated")
		}
		if e.TimedOut {
			b.WriteString(" after timing out")
		}
	case KindStderr:
		b.WriteString(" wrote to standard error")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		b.WriteString(": ")
		b.WriteString(stderr)
	}
	return b.String()
}

func (e *Error) commandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

func (e *Error) Is(target error) bool {
	if target == e.Kind.sentinel() {
		return true
	}
	if e.TimedOut {
		return target == ErrTimeout || target == context.DeadlineExceeded
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors.Cause see through the error.
func (e *Error) Cause() error {
	return e.Err
}
