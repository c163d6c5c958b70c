package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styling for help text and other CLI output.
var (
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"}).
			Bold(true)

	paragraphStyle = lipgloss.NewStyle().
			Width(78).
			Padding(0, 0, 0, 2)
)

// Wrap help text to the terminal, capped at a readable width.
func init() {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 {
		if w > 80 {
			w = 80
		}
		paragraphStyle = paragraphStyle.Width(w - 2)
	}
}

func keyword(s string) string {
	return keywordStyle.Render(s)
}

func paragraph(s string) string {
	return paragraphStyle.Render(s)
}
