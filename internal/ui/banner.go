package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner renders the startup header.
func Banner(theme *Theme, version string) string {
	title := theme.Title.Render("nxt-gen")
	if version != "" {
		title += " " + theme.Muted.Render(version)
	}
	lines := []string{
		title,
		theme.Muted.Render("Next.js project generator"),
	}
	if theme.NoColor {
		return strings.Join(lines, "\n") + "\n"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Colors.Primary).
		Padding(0, 2).
		Render(strings.Join(lines, "\n")) + "\n"
}
