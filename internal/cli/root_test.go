package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxt-gen-cli/nxt-gen/internal/cli/wizard"
	"github.com/nxt-gen-cli/nxt-gen/internal/core/project"
	"github.com/nxt-gen-cli/nxt-gen/internal/defs"
	"github.com/nxt-gen-cli/nxt-gen/internal/shell"
	"github.com/nxt-gen-cli/nxt-gen/internal/ui"
	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// recordingRunner simulates create-next-app by writing the files the
// later steps depend on.
type recordingRunner struct {
	fs    afero.Fs
	calls []string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, cmd shell.Command) error {
	r.calls = append(r.calls, cmd.String())
	if r.err != nil {
		return r.err
	}
	if cmd.Name == "npx" && len(cmd.Args) > 1 && cmd.Args[0] == "create-next-app@latest" {
		root := filepath.Join(cmd.Dir, cmd.Args[1])
		layout := filepath.Join(root, filepath.FromSlash(defs.RootLayout))
		if err := r.fs.MkdirAll(filepath.Dir(layout), defs.DirPerm); err != nil {
			return err
		}
		return afero.WriteFile(r.fs, layout, []byte("<body>{children}</body>\n"), defs.FilePerm)
	}
	return nil
}

// spyScaffolder records whether Scaffold was called.
type spyScaffolder struct {
	called bool
}

func (s *spyScaffolder) Scaffold(context.Context, string, models.ProjectConfig) (*project.Result, error) {
	s.called = true
	return &project.Result{}, nil
}

// countingPrompter answers with defaults and counts questions.
type countingPrompter struct {
	asked   []string
	name    string
	nameErr error
}

func (p *countingPrompter) Ask(q wizard.Question, def string) (string, error) {
	p.asked = append(p.asked, q.ID)
	if q.ID == wizard.QuestionProjectName {
		if p.nameErr != nil {
			return "", p.nameErr
		}
		if p.name != "" {
			return p.name, nil
		}
	}
	return def, nil
}

type testEnv struct {
	fs       afero.Fs
	runner   *recordingRunner
	prompter *countingPrompter
	headless *ui.HeadlessManager
	out      *bytes.Buffer
}

func setupTestDeps(t *testing.T, interactive bool) *testEnv {
	t.Helper()
	t.Setenv("NXTGEN_CONFIG", "")

	fsys := afero.NewMemMapFs()
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(!interactive)

	env := &testEnv{
		fs:       fsys,
		runner:   &recordingRunner{fs: fsys},
		prompter: &countingPrompter{},
		headless: hm,
		out:      new(bytes.Buffer),
	}

	old := GetDeps()
	SetDeps(&Dependencies{
		Fs:            fsys,
		Runner:        env.runner,
		Prompter:      env.prompter,
		Headless:      hm,
		Theme:         ui.NoColorTheme(),
		NewScaffolder: project.NewScaffolder,
		WorkDir:       "/work",
		HomeDir:       "/home/dev",
	})
	t.Cleanup(func() { SetDeps(old) })
	return env
}

func (e *testEnv) execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetOut(e.out)
	cmd.SetErr(e.out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"prisma", "react-query", "axios", "ui", "framer-motion", "lucide", "examples", "yes", "verbose", "config"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "--%s", name)
	}
	assert.Equal(t, "y", cmd.Flags().Lookup("yes").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("verbose").Shorthand)
}

func TestRootCmd_MinimalProject(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute("demo",
		"--prisma=false", "--react-query=false", "--axios=false",
		"--ui", "none", "--framer-motion=false", "--lucide=false", "--examples", "none")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"npx create-next-app@latest demo --typescript --tailwind --eslint --app --src-dir --import-alias @/* --use-npm",
	}, env.runner.calls)
	assert.Empty(t, env.prompter.asked)

	output := env.out.String()
	assert.Contains(t, output, "Selected configuration:")
	assert.Contains(t, output, "react_query: false")
	assert.Contains(t, output, "ui: none")
	assert.Contains(t, output, "Project created successfully!")
	assert.Contains(t, output, "providers.tsx")

	ok, err := afero.Exists(env.fs, "/work/demo/src/components/providers.tsx")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRootCmd_FullFlagsNeverPrompt(t *testing.T) {
	env := setupTestDeps(t, true)

	err := env.execute("shop",
		"--prisma", "--react-query", "--axios", "--ui", "shadcn",
		"--framer-motion", "--lucide", "--examples", "crud")
	require.NoError(t, err)

	assert.Empty(t, env.prompter.asked)
	assert.Contains(t, env.runner.calls, "npm install prisma --save-dev")
	assert.Contains(t, env.runner.calls, "npm install lucide-react")
}

func TestRootCmd_PromptsOnlyMissingChoices(t *testing.T) {
	env := setupTestDeps(t, true)

	err := env.execute("shop", "--prisma", "--ui", "heroui")
	require.NoError(t, err)

	assert.Equal(t, []string{
		wizard.QuestionReactQuery, wizard.QuestionAxios,
		wizard.QuestionFramerMotion, wizard.QuestionLucide, wizard.QuestionExamples,
	}, env.prompter.asked)
}

func TestRootCmd_YesUsesDefaults(t *testing.T) {
	env := setupTestDeps(t, true)

	err := env.execute("shop", "-y")
	require.NoError(t, err)

	assert.Empty(t, env.prompter.asked)
	assert.Contains(t, env.runner.calls, "npm install @tanstack/react-query")
	assert.Contains(t, env.runner.calls, "npm install class-variance-authority clsx tailwind-merge lucide-react")
	assert.NotContains(t, env.runner.calls, "npm install axios")
}

func TestRootCmd_PresetFileFeedsDefaults(t *testing.T) {
	env := setupTestDeps(t, false)
	require.NoError(t, afero.WriteFile(env.fs, "/work/.nxtgen.yaml", []byte("axios: true\nui: none\nreact_query: false\n"), 0o644))

	err := env.execute("shop")
	require.NoError(t, err)

	assert.Contains(t, env.runner.calls, "npm install axios")
	assert.NotContains(t, env.runner.calls, "npm install @tanstack/react-query")
}

func TestRootCmd_ExplicitPresetMissing(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute("shop", "--config", "/nope.yaml")
	require.Error(t, err)
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_PromptsForName(t *testing.T) {
	env := setupTestDeps(t, true)
	env.prompter.name = "prompted-app"

	err := env.execute("-y")
	require.NoError(t, err)

	assert.Equal(t, []string{wizard.QuestionProjectName}, env.prompter.asked)
	require.NotEmpty(t, env.runner.calls)
	assert.Contains(t, env.runner.calls[0], "create-next-app@latest prompted-app ")
}

func TestRootCmd_MissingNameWithoutTerminal(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute()
	require.ErrorIs(t, err, project.ErrNameRequired)
	assert.Equal(t, "Project name is required.", err.Error())
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_NamePromptCancelled(t *testing.T) {
	env := setupTestDeps(t, true)
	env.prompter.nameErr = wizard.ErrCancelled

	err := env.execute("-y")
	require.ErrorIs(t, err, project.ErrNameRequired)
	assert.Equal(t, "Project name is required.", err.Error())
	assert.Equal(t, []string{wizard.QuestionProjectName}, env.prompter.asked)
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_NameIsNotTrimmed(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute(" demo ", "-y")
	require.ErrorIs(t, err, project.ErrInvalidName)
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_InvalidNameNeverScaffolds(t *testing.T) {
	env := setupTestDeps(t, false)
	spy := &spyScaffolder{}
	deps.NewScaffolder = func(shell.Runner, afero.Fs, project.ScaffoldOptions) project.Scaffolder { return spy }

	err := env.execute("My App", "-y")
	require.ErrorIs(t, err, project.ErrInvalidName)
	assert.Contains(t, err.Error(), `Try "my-app".`)
	assert.False(t, spy.called)
	assert.Empty(t, env.runner.calls)

	ok, err := afero.DirExists(env.fs, "/work/My App")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRootCmd_InvalidUIFlag(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute("demo", "--ui", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
	assert.Contains(t, err.Error(), "shadcn, heroui, both, none")
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_InvalidExamplesFlag(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute("demo", "--examples", "blog")
	require.Error(t, err)
	assert.Empty(t, env.runner.calls)
}

func TestRootCmd_ScaffoldFailure(t *testing.T) {
	env := setupTestDeps(t, false)
	env.runner.err = &shell.ProcessError{Name: "npx", Args: []string{"create-next-app@latest", "demo"}, ExitCode: 1}

	err := env.execute("demo", "-y")
	require.Error(t, err)

	var procErr *shell.ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.True(t, strings.HasPrefix(err.Error(), "Failed to create project: "))
	assert.Len(t, env.runner.calls, 1)
	assert.NotContains(t, env.out.String(), "Project created successfully!")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	env := setupTestDeps(t, false)

	err := env.execute("one", "two")
	require.Error(t, err)
	assert.Empty(t, env.runner.calls)
}

func TestOptionsFromFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--prisma=false", "--ui", "HeroUI", "--examples", "both"}))

	opts := optionsFromFlags(cmd)
	require.NotNil(t, opts.Prisma)
	assert.False(t, *opts.Prisma)
	require.NotNil(t, opts.UI)
	assert.Equal(t, models.UIHeroUI, *opts.UI)
	require.NotNil(t, opts.Examples)
	assert.Equal(t, models.ExamplesBoth, *opts.Examples)
	assert.Nil(t, opts.ReactQuery)
	assert.Nil(t, opts.Axios)
	assert.Nil(t, opts.FramerMotion)
	assert.Nil(t, opts.Lucide)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errNameRequired())
	assert.Contains(t, buf.String(), "Project name is required.")

	buf.Reset()
	printError(&buf, assert.AnError)
	assert.Contains(t, buf.String(), "Error: "+assert.AnError.Error())
}

func TestErrInvalidName_WithoutSuggestion(t *testing.T) {
	err := errInvalidName("!!!")
	assert.NotContains(t, err.Error(), "Try")
	assert.ErrorIs(t, err, project.ErrInvalidName)
}

func TestInitDependencies(t *testing.T) {
	old := GetDeps()
	t.Cleanup(func() { SetDeps(old) })

	InitDependencies()
	d := GetDeps()
	require.NotNil(t, d)
	assert.NotNil(t, d.Fs)
	assert.NotNil(t, d.Headless)
	assert.NotNil(t, d.Theme)
	assert.NotNil(t, d.Logger)
	assert.NotNil(t, d.NewScaffolder)
	assert.Nil(t, d.Runner)
	assert.Nil(t, d.Prompter)
}
