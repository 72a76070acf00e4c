// Package console provides styled terminal output helpers for the OSSA CLI.
// All user-facing messages funnel through the Format* helpers so styling stays
// consistent across commands.
package console

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})

	headerStyle = lipgloss.NewStyle().Bold(true)
)

// FormatErrorMessage formats an error message with a leading cross mark.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatWarningMessage formats a warning message with a leading warning sign.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ " + msg)
}

// FormatSuccessMessage formats a success message with a leading check mark.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatDimMessage formats secondary detail text.
func FormatDimMessage(msg string) string {
	return dimStyle.Render(msg)
}

// FormatHeader formats a section header.
func FormatHeader(msg string) string {
	return headerStyle.Render(msg)
}
