package render

import "github.com/charmbracelet/lipgloss"

// Styles carries the terminal styling for a report. Zero-value styles
// render their input unchanged, which is what tests use.
type Styles struct {
	Label lipgloss.Style
	Bar   lipgloss.Style
}

// DefaultStyles returns the styling used when printing to a terminal.
// lipgloss drops the escape sequences when stdout is not a TTY.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Bold(true),
		Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
}
