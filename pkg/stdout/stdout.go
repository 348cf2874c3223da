// Package stdout runs external commands and returns what they print on
// standard output, minus the final newline. A command fails if it cannot
// be started, exits with a failure status, is killed, or writes anything
// at all to standard error.
package stdout

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/patik/simple-stdout/internal/command"
)

var defaultRunner = command.NewExecRunner()

// Shell runs command through the system shell (/bin/sh -c, or cmd.exe /c
// on windows), so pipes, redirection, subshells and variable expansion
// all work.
func Shell(ctx context.Context, cmd string, opts *Options) (string, error) {
	return shell(ctx, defaultRunner, cmd, opts)
}

// File runs the executable file with args and no shell in between.
// Arguments reach the child exactly as given, so "$HOME" stays "$HOME".
func File(ctx context.Context, file string, args []string, opts *Options) (string, error) {
	return run(ctx, defaultRunner, file, args, opts)
}

func shell(ctx context.Context, runner command.Runner, cmd string, opts *Options) (string, error) {
	if cmd == "" {
		return "", &Error{Kind: KindSpawn, ExitCode: -1, Err: ErrEmptyCommand}
	}
	var sh string
	if opts != nil {
		sh = opts.Shell
	}
	name, args := shellCommand(sh, cmd)
	return run(ctx, runner, name, args, opts)
}

func run(ctx context.Context, runner command.Runner, file string, args []string, opts *Options) (string, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return "", err
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	logger := o.logger()
	spec := command.Spec{Name: file, Args: args, Dir: o.Dir, Env: o.environ()}
	logger.Debug("running command", slog.String("command", spec.String()), slog.String("dir", o.Dir))

	res, runErr := runner.RunWithContext(ctx, spec)
	if err := classify(ctx, spec, res, runErr); err != nil {
		logger.Debug("command failed",
			slog.String("command", spec.String()),
			slog.String("kind", err.Kind.String()),
			slog.Int("exit_code", err.ExitCode),
			slog.String("signal", err.Signal))
		return "", err
	}
	return clean(string(res.Stdout)), nil
}

// classify turns a runner outcome into an *Error, or nil on success. A
// run error always wins over stderr output.
func classify(ctx context.Context, spec command.Spec, res command.Result, runErr error) *Error {
	e := &Error{
		Command:  spec.Name,
		Args:     spec.Args,
		ExitCode: res.ExitCode,
		Signal:   res.Signal,
		Stderr:   string(res.Stderr),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
		Err:      runErr,
	}
	var startErr *command.StartError
	if errors.Is(runErr, exec.ErrWaitDelay) && res.ExitCode == 0 && res.Signal == "" {
		runErr, e.Err = nil, nil
	}
	switch {
	case runErr != nil && errors.As(runErr, &startErr):
		e.Kind = KindSpawn
	case res.Signal != "":
		e.Kind = KindSignal
	case runErr != nil && ctx.Err() != nil:
		e.Kind = KindSignal
	case res.ExitCode > 0:
		e.Kind = KindExit
	case runErr != nil:
		e.Kind = KindSpawn
	case len(res.Stderr) > 0:
		e.Kind = KindStderr
	default:
		return nil
	}
	return e
}

// clean drops exactly one trailing newline.
func clean(output string) string {
	return strings.TrimSuffix(output, "\n")
}
