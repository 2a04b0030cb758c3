package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

func testTheme() *Theme {
	return NoColorTheme()
}

// newTestProgram creates a tea.Program configured for test environments without a TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	assert.True(t, hm.IsHeadless())
	assert.False(t, hm.CanPrompt())

	hm.ForceHeadless(false)
	assert.False(t, hm.IsHeadless())
	assert.True(t, hm.CanPrompt())

	hm.ClearForce()
	assert.Nil(t, hm.forced)
}

func TestHeadlessManager_NilStreams(t *testing.T) {
	hm := &HeadlessManager{}
	assert.True(t, hm.IsHeadless())
	assert.False(t, hm.CanPrompt())
}

func TestNewReporter_HeadlessUsesLines(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	r := NewReporter(NewTheme(), hm, io.Discard)
	_, ok := r.(*LineReporter)
	assert.True(t, ok)

	hm.ForceHeadless(false)
	r = NewReporter(NoColorTheme(), hm, io.Discard)
	_, ok = r.(*LineReporter)
	assert.True(t, ok, "no-color theme never animates")
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineReporter(testTheme(), &buf)

	r.Info("Initializing Next.js project in demo...")
	r.StepStart("Setting up Axios")
	r.StepDone("Setting up Axios")
	r.StepStart("Setting up Prisma")
	r.Warn("check manually")
	r.StepFailed("Setting up Prisma", errors.New("exit 1"))
	r.Close()

	assert.Equal(t, strings.Join([]string{
		"Initializing Next.js project in demo...",
		"Setting up Axios...",
		"✓ Setting up Axios",
		"Setting up Prisma...",
		"! check manually",
		"✗ Setting up Prisma: exit 1",
		"",
	}, "\n"), buf.String())
}

func TestSpinnerReporter_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerReporter(testTheme(), &buf, newTestProgram)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		r.Info("Initializing")
		r.StepStart("Cleaning up default files")
		r.StepDone("Cleaning up default files")
		r.StepStart("Setting up UI (heroui)")
		r.Warn("Could not inject plugin")
		r.StepFailed("Setting up UI (heroui)", errors.New("boom"))
		r.StepStart("Dangling")
		r.Close()
		r.Close()
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("spinner reporter did not finish within timeout")
	}

	assert.Equal(t, strings.Join([]string{
		"Initializing",
		"✓ Cleaning up default files",
		"! Could not inject plugin",
		"✗ Setting up UI (heroui)",
		"",
	}, "\n"), buf.String())
	assert.Nil(t, r.active)
}

func TestSpinnerModel(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Installing")
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Installing")

	next, cmd := m.Update(spinner.TickMsg{})
	assert.Contains(t, next.View(), "Installing")
	_ = cmd

	stopped, cmd := m.Update(spinnerStopMsg{})
	require.NotNil(t, cmd)
	assert.Empty(t, stopped.View())

	cancelled, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Empty(t, cancelled.View())
}

func TestBanner(t *testing.T) {
	out := Banner(NoColorTheme(), "v1.2.3")
	assert.Equal(t, "nxt-gen v1.2.3\nNext.js project generator\n", out)

	colored := Banner(NewTheme(), "")
	assert.Contains(t, colored, "nxt-gen")
	assert.Contains(t, colored, "Next.js project generator")
}

func TestFileTree(t *testing.T) {
	out, err := FileTree("demo", []string{
		"src/app/page.tsx",
		"src/components/providers.tsx",
		"src/app/api/posts/route.ts",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "demo", lines[0])
	assert.Contains(t, out, "page.tsx")
	assert.Contains(t, out, "providers.tsx")
	assert.Contains(t, out, "route.ts")
	assert.Contains(t, out, "└──")

	empty, err := FileTree("demo", nil)
	require.NoError(t, err)
	assert.Equal(t, "demo\n", empty)
}

func TestNextStepsMarkdown(t *testing.T) {
	md := NextStepsMarkdown("demo", models.ProjectConfig{UI: models.UINone, Examples: models.ExamplesNone})
	assert.Contains(t, md, "cd demo\n")
	assert.Contains(t, md, "npm run dev\n")
	assert.NotContains(t, md, "prisma")
	assert.NotContains(t, md, "/posts")

	md = NextStepsMarkdown("shop", models.ProjectConfig{Prisma: true, Examples: models.ExamplesBoth})
	assert.Contains(t, md, "npx prisma migrate dev --name init\n")
	assert.Contains(t, md, "DATABASE_URL")
	assert.Contains(t, md, "/posts")
	assert.Contains(t, md, "/auth")
}

func TestRenderMarkdown_NoColor(t *testing.T) {
	out, err := RenderMarkdown(NoColorTheme(), "## Next steps\n\nrun `npm run dev`\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Next steps")
	assert.Contains(t, out, "npm run dev")
}

func TestSummary(t *testing.T) {
	cfg := models.ProjectConfig{UI: models.UINone, Examples: models.ExamplesNone}
	out := Summary(NoColorTheme(), "demo", "/work/demo", []string{"src/app/page.tsx"}, cfg)

	assert.Contains(t, out, "Project created successfully!")
	assert.Contains(t, out, "/work/demo")
	assert.Contains(t, out, "Generated files:")
	assert.Contains(t, out, "page.tsx")
	assert.Contains(t, out, "npm run dev")
}

func TestNoColorTheme(t *testing.T) {
	theme := NoColorTheme()
	assert.True(t, theme.NoColor)
	assert.Equal(t, "plain", theme.Success.Render("plain"))
	assert.Equal(t, "plain", theme.Card.Render("plain"))
}

func TestNewTheme_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NewTheme().NoColor)
}
