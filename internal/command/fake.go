package command

import (
	"context"
	"sync"
	"time"
)

// Script is a canned outcome returned by FakeRunner for one command line.
type Script struct {
	Result Result
	Err    error
	// Wait, when set, blocks the call until it elapses or ctx is done.
	Wait time.Duration
}

type FakeRunner struct {
	mu      sync.Mutex
	Scripts map[string]Script
	Calls   []Spec
}

func (f *FakeRunner) Run(spec Spec) (Result, error) {
	return f.RunWithContext(context.Background(), spec)
}

func (f *FakeRunner) RunWithContext(ctx context.Context, spec Spec) (Result, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, spec)
	script, ok := f.Scripts[spec.String()]
	f.mu.Unlock()
	if !ok {
		return Result{}, nil
	}
	if script.Wait > 0 {
		select {
		case <-time.After(script.Wait):
		case <-ctx.Done():
			return Result{ExitCode: -1, Signal: "SIGKILL"}, ctx.Err()
		}
	}
	return script.Result, script.Err
}

func (f *FakeRunner) RunWithTimeout(timeout time.Duration, spec Spec) (Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.RunWithContext(ctx, spec)
}

func (f *FakeRunner) AddScript(cmd string, args []string, script Script) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Scripts[Spec{Name: cmd, Args: args}.String()] = script
}

// LastCall returns the most recent spec passed to the runner.
func (f *FakeRunner) LastCall() (Spec, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return Spec{}, false
	}
	return f.Calls[len(f.Calls)-1], true
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Scripts: make(map[string]Script),
	}
}
