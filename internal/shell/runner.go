// Package shell runs the external tools (npm, npx) that materialize the
// generated project. Every child process goes through the Runner interface
// so callers can substitute a recording fake in tests.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external process invocation.
type Command struct {
	Name  string   // Executable looked up on PATH.
	Args  []string // Arguments, in order.
	Dir   string   // Working directory.
	Quiet bool     // Capture output instead of streaming it to the terminal.
}

// String renders the command line for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external processes.
type Runner interface {
	// Run blocks until the process exits. It returns a *SpawnError when the
	// process could not be started and a *ProcessError on a non-zero exit.
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner creates a Runner that inherits the process standard streams.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
	}
}

// newExecRunnerWithStreams creates an ExecRunner with custom streams (for testing).
func newExecRunnerWithStreams(stdin io.Reader, stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run starts cmd and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	r.logger.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir, "quiet", cmd.Quiet)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var captured bytes.Buffer
	if cmd.Quiet {
		c.Stdout = &captured
		c.Stderr = &captured
	} else {
		c.Stdin = r.stdin
		c.Stdout = r.stdout
		c.Stderr = r.stderr
	}

	if err := c.Start(); err != nil {
		return &SpawnError{Name: cmd.Name, Err: err}
	}

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("command failed", "cmd", cmd.Name, "exitCode", exitErr.ExitCode())
			return &ProcessError{
				Name:     cmd.Name,
				Args:     cmd.Args,
				ExitCode: exitErr.ExitCode(),
				Output:   captured.String(),
			}
		}
		return &SpawnError{Name: cmd.Name, Err: err}
	}

	return nil
}
