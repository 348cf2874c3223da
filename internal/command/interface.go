package command

import (
	"context"
	"strings"
	"time"
)

// Spec describes a single process to start. Env, when non-nil, is the
// complete environment of the child in KEY=value form.
type Spec struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// String renders the spec as a space separated command line.
func (s Spec) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}

type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	// Signal is the name of the signal that terminated the process, if any.
	Signal string
}

type Runner interface {
	Run(spec Spec) (Result, error)
	RunWithContext(ctx context.Context, spec Spec) (Result, error)
	RunWithTimeout(timeout time.Duration, spec Spec) (Result, error)
}

// StartError reports that the process never came into existence.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	if e.Name == "" {
		return "start process: " + e.Err.Error()
	}
	return "start " + e.Name + ": " + e.Err.Error()
}

func (e *StartError) Unwrap() error {
	return e.Err
}
