// Package project implements the nxt-gen core: project name validation and
// the Scaffolder that turns a ProjectConfig into a Next.js project on disk by
// running create-next-app, installing packages and writing templates.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrNameRequired indicates no project name was supplied.
	ErrNameRequired = errors.New("project name is required")

	// ErrInvalidName indicates the project name violates package naming rules.
	ErrInvalidName = errors.New("invalid project name")
)

// FileSystemError records a failed read, write or remove inside the
// generated project directory.
type FileSystemError struct {
	Op   string // "read", "write", "mkdir" or "remove"
	Path string // Path relative to the project root.
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
