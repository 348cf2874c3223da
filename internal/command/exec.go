package command

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

type execRunner struct{}

func (e *execRunner) Run(spec Spec) (Result, error) {
	return e.RunWithContext(context.Background(), spec)
}

func (e *execRunner) RunWithContext(ctx context.Context, spec Spec) (Result, error) {
	if spec.Name == "" {
		return Result{ExitCode: -1}, &StartError{Err: errors.New("no executable given")}
	}
	command := exec.CommandContext(ctx, spec.Name, spec.Args...)
	command.Dir = spec.Dir
	if spec.Env != nil {
		command.Env = spec.Env
	}
	var out, errBuffer bytes.Buffer
	command.Stdout, command.Stderr = &out, &errBuffer
	configureProcess(command)

	if err := command.Start(); err != nil {
		return Result{Stdout: out.Bytes(), Stderr: errBuffer.Bytes(), ExitCode: -1}, &StartError{Name: spec.Name, Err: err}
	}
	runErr := command.Wait()
	res := Result{Stdout: out.Bytes(), Stderr: errBuffer.Bytes(), ExitCode: -1}
	if state := command.ProcessState; state != nil {
		res.ExitCode = state.ExitCode()
		res.Signal = signalName(state)
	}
	return res, runErr
}

func (e *execRunner) RunWithTimeout(timeout time.Duration, spec Spec) (Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return e.RunWithContext(ctx, spec)
}

func NewExecRunner() Runner {
	return &execRunner{}
}
