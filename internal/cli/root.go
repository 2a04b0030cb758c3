package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nxt-gen-cli/nxt-gen/internal/cli/wizard"
	"github.com/nxt-gen-cli/nxt-gen/internal/config"
	"github.com/nxt-gen-cli/nxt-gen/internal/core/project"
	"github.com/nxt-gen-cli/nxt-gen/internal/shell"
	"github.com/nxt-gen-cli/nxt-gen/internal/ui"
	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
	"github.com/nxt-gen-cli/nxt-gen/pkg/version"
)

var rootCmd = newRootCmd()

// newRootCmd builds the nxt-gen command with fresh flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nxt-gen [project-name]",
		Short: "Scaffold a Next.js project with your choice of libraries",
		Long: `nxt-gen creates a Next.js application (TypeScript, Tailwind, ESLint,
App Router, src/ directory) with create-next-app and layers optional
libraries and example pages on top.

Choices not given as flags are asked interactively. Defaults come from
.nxtgen.yaml in the working or home directory and NXTGEN_* variables.

Examples:
  nxt-gen my-app                        Ask for every choice
  nxt-gen my-app --prisma --ui heroui   Ask only for the remaining choices
  nxt-gen my-app -y --examples both     Use defaults for everything else`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCreate,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("nxt-gen %s\n", version.GetVersion()))
	registerFlags(cmd)
	return cmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// runCreate resolves the project name and configuration, then scaffolds.
func runCreate(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	theme := deps.Theme
	if theme == nil {
		theme = ui.NewTheme()
	}
	hm := deps.Headless
	if hm == nil {
		hm = ui.NewHeadlessManager()
	}

	verbose := getBoolFlag(cmd, flagVerbose)
	logger := deps.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	_, _ = fmt.Fprint(out, ui.Banner(theme, version.GetVersion()))

	interactive := hm.CanPrompt()
	prompter := deps.Prompter
	if prompter == nil {
		prompter = wizard.NewHuhPrompter(theme.NoColor)
	}

	// Project name
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else if interactive {
		answer, err := wizard.PromptName(prompter, wizard.DefaultProjectName)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				return errNameRequired()
			}
			return fmt.Errorf("prompt project name: %w", err)
		}
		name = answer
	}
	if name == "" {
		return errNameRequired()
	}
	if !project.ValidateName(name) {
		return errInvalidName(name)
	}

	// Configuration
	workDir, err := resolveWorkDir()
	if err != nil {
		return err
	}
	preset, err := config.NewLoader(deps.Fs, logger).Load(config.LoadOptions{
		ConfigFile: getStringFlag(cmd, flagConfig),
		WorkDir:    workDir,
		HomeDir:    resolveHomeDir(),
	})
	if err != nil {
		return fmt.Errorf("load preset: %w", err)
	}

	if getBoolFlag(cmd, flagYes) || !interactive {
		prompter = wizard.DefaultsPrompter{}
	}
	cfg, err := wizard.Collect(optionsFromFlags(cmd), preset.Defaults, prompter)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cliWarn.Render("Project creation cancelled."))
			return nil
		}
		return fmt.Errorf("collect configuration: %w", err)
	}

	if err := printConfig(out, cfg); err != nil {
		return err
	}

	// Scaffold
	var reporter ui.Reporter
	if verbose {
		reporter = ui.NewLineReporter(theme, out)
	} else {
		reporter = ui.NewReporter(theme, hm, out)
	}
	defer reporter.Close()

	runner := deps.Runner
	if runner == nil {
		runner = shell.NewExecRunner(logger)
	}
	newScaffolder := deps.NewScaffolder
	if newScaffolder == nil {
		newScaffolder = project.NewScaffolder
	}
	scaffolder := newScaffolder(runner, deps.Fs, project.ScaffoldOptions{
		WorkDir:       workDir,
		QuietInstalls: !verbose,
		Reporter:      reporter,
		Logger:        logger,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := scaffolder.Scaffold(ctx, name, cfg)
	reporter.Close()
	if err != nil {
		return errCreateFailed(err)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, ui.Summary(theme, name, result.Root, result.Files, cfg))
	return nil
}

// printConfig writes the selected configuration as YAML.
func printConfig(w io.Writer, cfg models.ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	_, _ = fmt.Fprintln(w, cliMuted.Render("Selected configuration:"))
	_, _ = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))
	_, _ = fmt.Fprintln(w)
	return nil
}

func resolveWorkDir() (string, error) {
	if deps.WorkDir != "" {
		return deps.WorkDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

func resolveHomeDir() string {
	if deps.HomeDir != "" {
		return deps.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
