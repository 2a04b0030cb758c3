package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/nxt-gen-cli/nxt-gen/internal/defs"
	"github.com/nxt-gen-cli/nxt-gen/internal/shell"
	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// createNextAppArgs are passed to create-next-app after the project name.
var createNextAppArgs = []string{
	"--typescript",
	"--tailwind",
	"--eslint",
	"--app",
	"--src-dir",
	"--import-alias", "@/*",
	"--use-npm",
}

// Scaffolder generates a Next.js project from a ProjectConfig.
type Scaffolder interface {
	// Scaffold creates <WorkDir>/<name> and applies every selected feature.
	// The first failing step aborts the run; files already written stay on disk.
	Scaffold(ctx context.Context, name string, cfg models.ProjectConfig) (*Result, error)
}

// ScaffoldOptions configures a Scaffolder.
type ScaffoldOptions struct {
	WorkDir       string       // Directory the project directory is created in.
	QuietInstalls bool         // Capture package manager output instead of streaming it.
	Reporter      Reporter     // Progress sink. Defaults to a no-op reporter.
	Logger        *slog.Logger // Defaults to a discarding logger.
}

// Result summarizes a completed scaffold run.
type Result struct {
	Root     string   // Absolute path of the generated project.
	Files    []string // Files written, relative and slash-separated, in first-write order.
	Patched  []string // Pre-existing files that were edited in place.
	Commands []string // External commands run, in order.
	Warnings []string // Non-fatal problems.
}

// scaffolder is the concrete implementation of Scaffolder.
type scaffolder struct {
	runner   shell.Runner
	fs       afero.Fs
	opts     ScaffoldOptions
	reporter Reporter
	logger   *slog.Logger
}

// NewScaffolder creates a Scaffolder that runs external tools through runner
// and performs all file I/O through fsys.
func NewScaffolder(runner shell.Runner, fsys afero.Fs, opts ScaffoldOptions) Scaffolder {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{
		runner:   runner,
		fs:       fsys,
		opts:     opts,
		reporter: reporter,
		logger:   logger,
	}
}

// step is one unit of the scaffold plan.
type step struct {
	id          string // Short identifier used in error messages.
	title       string // Progress title.
	interactive bool   // The step hands the terminal to a child process.
	run         func(ctx context.Context, s *session) error
}

// session carries the state of a single Scaffold call.
type session struct {
	*scaffolder
	name   string
	root   string
	cfg    models.ProjectConfig
	result *Result
}

// Scaffold runs the plan for cfg step by step.
func (sc *scaffolder) Scaffold(ctx context.Context, name string, cfg models.ProjectConfig) (*Result, error) {
	if !ValidateName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	root := filepath.Join(sc.opts.WorkDir, name)
	s := &session{
		scaffolder: sc,
		name:       name,
		root:       root,
		cfg:        cfg,
		result:     &Result{Root: root},
	}

	sc.logger.Info("scaffolding project", "name", name, "root", root, "config", cfg)

	for _, st := range plan(name, cfg) {
		if err := ctx.Err(); err != nil {
			return s.result, err
		}

		if st.interactive {
			sc.reporter.Info(st.title)
		} else {
			sc.reporter.StepStart(st.title)
		}

		if err := st.run(ctx, s); err != nil {
			if !st.interactive {
				sc.reporter.StepFailed(st.title, err)
			}
			sc.logger.Debug("step failed", "step", st.id, "error", err)
			return s.result, fmt.Errorf("%s: %w", st.id, err)
		}

		if !st.interactive {
			sc.reporter.StepDone(st.title)
		}
	}

	sc.logger.Info("project scaffolded", "files", len(s.result.Files), "commands", len(s.result.Commands))
	return s.result, nil
}

// plan returns the ordered steps for cfg. The providers step is always last
// because it patches the layout written by create-next-app.
func plan(name string, cfg models.ProjectConfig) []step {
	steps := []step{
		{id: "create-next-app", title: fmt.Sprintf("Initializing Next.js project in %s...", name), interactive: true, run: createBaseProject},
		{id: "cleanup", title: "Cleaning up default files", run: cleanupDefaultFiles},
	}
	if cfg.Prisma {
		steps = append(steps, step{id: "prisma", title: "Setting up Prisma", run: setupPrisma})
	}
	if cfg.ReactQuery {
		steps = append(steps, step{id: "react-query", title: "Setting up React Query", run: setupReactQuery})
	}
	if cfg.Axios {
		steps = append(steps, step{id: "axios", title: "Setting up Axios", run: setupAxios})
	}
	if cfg.UI != models.UINone && cfg.UI != "" {
		steps = append(steps, step{id: "ui", title: fmt.Sprintf("Setting up UI (%s)", cfg.UI), run: setupUI})
	}
	if cfg.FramerMotion {
		steps = append(steps, step{id: "framer-motion", title: "Installing Framer Motion", run: setupFramerMotion})
	}
	if cfg.Lucide {
		steps = append(steps, step{id: "lucide", title: "Installing Lucide React", run: setupLucide})
	}
	if cfg.Examples != models.ExamplesNone && cfg.Examples != "" {
		steps = append(steps, step{id: "examples", title: fmt.Sprintf("Generating examples (%s)", cfg.Examples), run: setupExamples})
	}
	steps = append(steps, step{id: "providers", title: "Wiring providers into the root layout", run: setupProviders})
	return steps
}

// --- session helpers ---

func (s *session) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// writeFile writes content to rel, creating parent directories.
func (s *session) writeFile(rel, content string) error {
	if err := s.put(rel, content); err != nil {
		return err
	}
	if !slices.Contains(s.result.Files, rel) {
		s.result.Files = append(s.result.Files, rel)
	}
	return nil
}

// patchFile replaces the content of an existing file.
func (s *session) patchFile(rel, content string) error {
	if err := s.put(rel, content); err != nil {
		return err
	}
	if !slices.Contains(s.result.Patched, rel) {
		s.result.Patched = append(s.result.Patched, rel)
	}
	return nil
}

func (s *session) put(rel, content string) error {
	path := s.abs(rel)
	if err := s.fs.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return &FileSystemError{Op: "mkdir", Path: filepath.ToSlash(filepath.Dir(rel)), Err: err}
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), defs.FilePerm); err != nil {
		return &FileSystemError{Op: "write", Path: rel, Err: err}
	}
	s.logger.Debug("wrote file", "path", rel, "bytes", len(content))
	return nil
}

// readFile returns the content of rel.
func (s *session) readFile(rel string) (string, error) {
	data, err := afero.ReadFile(s.fs, s.abs(rel))
	if err != nil {
		return "", &FileSystemError{Op: "read", Path: rel, Err: err}
	}
	return string(data), nil
}

// exists reports whether rel exists.
func (s *session) exists(rel string) (bool, error) {
	ok, err := afero.Exists(s.fs, s.abs(rel))
	if err != nil {
		return false, &FileSystemError{Op: "stat", Path: rel, Err: err}
	}
	return ok, nil
}

// removeFile deletes rel. A missing file is not an error.
func (s *session) removeFile(rel string) error {
	if err := s.fs.Remove(s.abs(rel)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &FileSystemError{Op: "remove", Path: rel, Err: err}
	}
	return nil
}

// exec runs an external command inside the project directory.
func (s *session) exec(ctx context.Context, name string, args ...string) error {
	return s.run(ctx, shell.Command{Name: name, Args: args, Dir: s.root, Quiet: s.opts.QuietInstalls})
}

// install runs npm install for the given packages.
func (s *session) install(ctx context.Context, packages ...string) error {
	return s.exec(ctx, "npm", append([]string{"install"}, packages...)...)
}

func (s *session) run(ctx context.Context, cmd shell.Command) error {
	s.result.Commands = append(s.result.Commands, cmd.String())
	return s.runner.Run(ctx, cmd)
}

func (s *session) warn(msg string) {
	s.result.Warnings = append(s.result.Warnings, msg)
	s.reporter.Warn(msg)
	s.logger.Warn(msg)
}
