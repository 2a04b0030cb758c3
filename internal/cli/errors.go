package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nxt-gen-cli/nxt-gen/internal/core/project"
)

// userError carries the message shown on the terminal and the underlying
// cause for errors.Is/As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

func errNameRequired() error {
	return &userError{msg: "Project name is required.", err: project.ErrNameRequired}
}

func errInvalidName(name string) error {
	msg := fmt.Sprintf("Invalid project name %q: use lowercase letters, digits, '-', '_' or '.', not starting with '.' or '_'.", name)
	if suggestion := project.SuggestName(name); suggestion != "" {
		msg += fmt.Sprintf(" Try %q.", suggestion)
	}
	return &userError{msg: msg, err: project.ErrInvalidName}
}

func errCreateFailed(err error) error {
	return &userError{msg: "Failed to create project: " + err.Error(), err: err}
}

// printError renders err as the single error line of a failed run.
func printError(w io.Writer, err error) {
	var ue *userError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(w, symError()+" "+cliError.Render(ue.msg))
		return
	}
	_, _ = fmt.Fprintln(w, symError()+" "+cliError.Render("Error: "+err.Error()))
}
