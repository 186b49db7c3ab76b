package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(visible, total int, term string, width int, searching, loading bool) string {
	left := fmt.Sprintf(" %d of %d stories", visible, total)
	if term != "" {
		left += " · " + fmt.Sprintf("%q", term)
	}
	if loading {
		left += " (loading...)"
	}

	right := " / search  x dismiss  R restore  r reload  q quit "
	if searching {
		right = " esc done  enter done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
