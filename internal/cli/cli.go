// Package cli implements the command-line tools. Each Run function takes the
// arguments after the program name and returns the process exit code.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/scigolib/h5table/internal/config"
	"github.com/scigolib/h5table/internal/logging"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// env is the per-run state shared by the tools.
type env struct {
	name   string
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	log    *slog.Logger
}

func newEnv(name string, stdout, stderr io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(stderr, cfg.Logging).With(slog.String("tool", name))
	slog.SetDefault(log)
	return &env{
		name:   name,
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		log:    log,
	}, nil
}

// fail reports err on stderr and returns ExitError.
func (e *env) fail(err error) int {
	_, _ = fmt.Fprintf(e.stderr, "%s: %v\n", e.name, err)
	return ExitError
}

func newFlagSet(name, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and returns the exit code to use when parsing ends the run.
func parse(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, false
		}
		return ExitUsage, false
	}
	return ExitOK, true
}

// positional parses args and requires exactly one positional argument.
func positional(fs *flag.FlagSet, args []string) (string, int, bool) {
	if code, ok := parse(fs, args); !ok {
		return "", code, false
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return "", ExitUsage, false
	}
	return fs.Arg(0), ExitOK, true
}

func startEnv(name string, stdout, stderr io.Writer) (*env, int) {
	e, err := newEnv(name, stdout, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return nil, ExitUsage
	}
	return e, ExitOK
}
