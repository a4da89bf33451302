// Package ui holds the terminal presentation used by the mnemo CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	MintGreen  = lipgloss.Color("#A8E6CF")
	SalmonPink = lipgloss.Color("#FFB3BA")
	MutedGray  = lipgloss.Color("#6B7280")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(MintGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(SalmonPink).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(MutedGray)
)

// Success renders a confirmation line.
func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// Error renders an error line.
func Error(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// Hint renders secondary text such as usage reminders.
func Hint(msg string) string {
	return hintStyle.Render(msg)
}
