// Package cli provides the Cobra command and dependency injection wiring
// for nxt-gen. This file defines the Dependencies struct (Composition Root)
// that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/nxt-gen-cli/nxt-gen/internal/cli/wizard"
	"github.com/nxt-gen-cli/nxt-gen/internal/core/project"
	"github.com/nxt-gen-cli/nxt-gen/internal/shell"
	"github.com/nxt-gen-cli/nxt-gen/internal/ui"
)

// ScaffolderFactory builds the Scaffolder for one run.
type ScaffolderFactory func(runner shell.Runner, fsys afero.Fs, opts project.ScaffoldOptions) project.Scaffolder

// Dependencies holds the services used by the root command.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Fs            afero.Fs
	Runner        shell.Runner    // nil: an os/exec runner sharing the run's logger
	Prompter      wizard.Prompter // nil: a huh prompter
	Headless      *ui.HeadlessManager
	Theme         *ui.Theme
	Logger        *slog.Logger
	NewScaffolder ScaffolderFactory
	WorkDir       string // Empty: the process working directory.
	HomeDir       string // Empty: the user's home directory.
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all production dependencies.
// It should be called once during application startup.
func InitDependencies() {
	// Logging stays silent unless --verbose swaps in a debug handler.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Fs:            afero.NewOsFs(),
		Headless:      ui.NewHeadlessManager(),
		Theme:         ui.NewTheme(),
		Logger:        logger,
		NewScaffolder: project.NewScaffolder,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
