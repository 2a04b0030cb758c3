// Package wizard collects the generator configuration interactively,
// asking only for the choices that were not supplied as flags.
package wizard

import "errors"

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeConfirm is a yes/no question answered with "true" or "false".
	QuestionTypeConfirm QuestionType = iota
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Confirm, Select or Input
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Required    bool         // Whether an input answer may be empty
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Prompter asks a single question. def is the pre-selected answer; answers
// to confirm questions are "true" or "false".
type Prompter interface {
	Ask(q Question, def string) (string, error)
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrInvalidAnswer is returned when a prompter answers outside a question's options.
	ErrInvalidAnswer = errors.New("invalid answer")
)
