package stdout

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Options adjusts how a command is started. A nil *Options means defaults.
type Options struct {
	// Dir is the working directory of the child. Empty means the
	// caller's current directory.
	Dir string
	// Env, when non-nil, is the complete environment of the child, even
	// if empty. A nil Env inherits the caller's environment.
	Env map[string]string
	// Timeout kills the command and rejects once elapsed. Zero disables it.
	Timeout time.Duration
	// Shell overrides the interpreter used by Shell. File ignores it.
	Shell string
	// Logger receives debug records about each run. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

func (o Options) Validate() error {
	if o.Timeout < 0 {
		return errors.Wrap(ErrInvalidOptions, "timeout must not be negative")
	}
	for k := range o.Env {
		if k == "" {
			return errors.Wrap(ErrInvalidOptions, "environment variable name is required")
		}
		if strings.ContainsAny(k, "=\x00") {
			return errors.Wrapf(ErrInvalidOptions, "environment variable name %q must not contain '=' or NUL", k)
		}
	}
	return nil
}

func (o Options) environ() []string {
	if o.Env == nil {
		return nil
	}
	env := make([]string, 0, len(o.Env))
	for k, v := range o.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger.With("component", "stdout")
	}
	return slog.Default().With("component", "stdout")
}
