package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the UI may animate and prompt.
type HeadlessManager struct {
	forced *bool
	stdin  *os.File
	stdout *os.File
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin and os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{stdin: os.Stdin, stdout: os.Stdout}
}

// IsHeadless returns true when either standard stream is not a terminal.
// ForceHeadless overrides detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.stdin) || !isTerminal(h.stdout)
}

// CanPrompt reports whether stdin is interactive.
func (h *HeadlessManager) CanPrompt() bool {
	if h.forced != nil {
		return !*h.forced
	}
	return isTerminal(h.stdin)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
