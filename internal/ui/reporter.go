package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nxt-gen-cli/nxt-gen/internal/core/project"
)

// Reporter is a project.Reporter that owns terminal resources.
type Reporter interface {
	project.Reporter
	// Close stops any running animation.
	Close()
}

// NewReporter picks the animated reporter for interactive terminals and the
// line reporter otherwise.
func NewReporter(theme *Theme, hm *HeadlessManager, w io.Writer) Reporter {
	if hm.IsHeadless() || theme.NoColor {
		return NewLineReporter(theme, w)
	}
	return NewSpinnerReporter(theme, w)
}

// --- spinner model ---

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(theme.Colors.Primary)
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// runningSpinner is a spinner program running in its own goroutine.
type runningSpinner struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func startSpinner(p *tea.Program) *runningSpinner {
	s := &runningSpinner{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = p.Run()
	}()
	return s
}

// stop halts the program and waits for it to release the terminal.
func (s *runningSpinner) stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		<-s.done
	})
}

// --- SpinnerReporter ---

// SpinnerReporter animates the running step and prints one line per
// finished step. It never reads stdin, so child processes keep the terminal.
type SpinnerReporter struct {
	theme      *Theme
	out        io.Writer
	newProgram func(tea.Model) *tea.Program

	mu      sync.Mutex
	active  *runningSpinner
	current string
}

// NewSpinnerReporter creates a SpinnerReporter writing to w.
func NewSpinnerReporter(theme *Theme, w io.Writer) *SpinnerReporter {
	return newSpinnerReporter(theme, w, func(m tea.Model) *tea.Program {
		return tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))
	})
}

// newSpinnerReporter creates a SpinnerReporter with a custom program factory (for testing).
func newSpinnerReporter(theme *Theme, w io.Writer, newProgram func(tea.Model) *tea.Program) *SpinnerReporter {
	return &SpinnerReporter{theme: theme, out: w, newProgram: newProgram}
}

func (r *SpinnerReporter) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	_, _ = fmt.Fprintln(r.out, r.theme.Accent.Render(msg))
}

func (r *SpinnerReporter) StepStart(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.startLocked(title)
}

func (r *SpinnerReporter) StepDone(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Success.Render("✓"), title)
}

func (r *SpinnerReporter) StepFailed(title string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Error.Render("✗"), title)
}

// Warn prints msg between spinner frames and resumes the current step.
func (r *SpinnerReporter) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resume := r.current
	r.stopLocked()
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Warn.Render("!"), msg)
	if resume != "" {
		r.startLocked(resume)
	}
}

// Close stops the spinner if one is running.
func (r *SpinnerReporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *SpinnerReporter) startLocked(title string) {
	r.active = startSpinner(r.newProgram(newSpinnerModel(r.theme, title)))
	r.current = title
}

func (r *SpinnerReporter) stopLocked() {
	if r.active == nil {
		return
	}
	r.active.stop()
	r.active = nil
	r.current = ""
}

// --- LineReporter ---

// LineReporter prints plain progress lines. Used without a TTY and with
// --verbose, where install output is streamed in between.
type LineReporter struct {
	theme *Theme
	out   io.Writer
}

// NewLineReporter creates a LineReporter writing to w.
func NewLineReporter(theme *Theme, w io.Writer) *LineReporter {
	return &LineReporter{theme: theme, out: w}
}

func (r *LineReporter) Info(msg string) {
	_, _ = fmt.Fprintln(r.out, r.theme.Accent.Render(msg))
}

func (r *LineReporter) StepStart(title string) {
	_, _ = fmt.Fprintf(r.out, "%s...\n", title)
}

func (r *LineReporter) StepDone(title string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Success.Render("✓"), title)
}

func (r *LineReporter) StepFailed(title string, err error) {
	_, _ = fmt.Fprintf(r.out, "%s %s: %v\n", r.theme.Error.Render("✗"), title, err)
}

func (r *LineReporter) Warn(msg string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Warn.Render("!"), msg)
}

func (r *LineReporter) Close() {}
