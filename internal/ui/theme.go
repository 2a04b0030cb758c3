// Package ui renders the terminal output of nxt-gen: styles, the step
// reporter, the banner and the post-scaffold summary.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark-background variants).
const (
	ColorPrimary   = "#3B82F6"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#374151"
)

// Palette holds adaptive colors for light and dark terminals.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
}

// Theme bundles the palette with the styles derived from it.
type Theme struct {
	Colors  Palette
	NoColor bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Card    lipgloss.Style
}

// DefaultPalette returns the nxt-gen brand palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: ColorPrimary},
		Secondary: lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary},
		Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess},
		Warning:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: ColorWarning},
		Error:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError},
		Text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText},
		Muted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted},
		Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder},
	}
}

// NewTheme creates the colored theme. It falls back to NoColorTheme when
// the NO_COLOR environment variable is set.
func NewTheme() *Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColorTheme()
	}
	p := DefaultPalette()
	return &Theme{
		Colors:  p,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warn:    lipgloss.NewStyle().Foreground(p.Warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Accent:  lipgloss.NewStyle().Foreground(p.Secondary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
	}
}

// NoColorTheme creates a theme whose styles emit no ANSI sequences.
func NoColorTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Colors:  DefaultPalette(),
		NoColor: true,
		Title:   plain,
		Success: plain,
		Warn:    plain,
		Error:   plain,
		Muted:   plain,
		Accent:  plain,
		Card:    plain,
	}
}
