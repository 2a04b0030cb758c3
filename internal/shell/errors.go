package shell

import (
	"fmt"
	"strings"
)

// SpawnError indicates an executable could not be started.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ProcessError indicates an executable exited with a non-zero status.
type ProcessError struct {
	Name     string
	Args     []string
	ExitCode int
	Output   string // Captured output of quiet commands; empty otherwise.
}

func (e *ProcessError) Error() string {
	cmdline := e.Name
	if len(e.Args) > 0 {
		cmdline += " " + strings.Join(e.Args, " ")
	}
	msg := fmt.Sprintf("command %q exited with code %d", cmdline, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}
