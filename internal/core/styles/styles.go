// Package styles provides shared lipgloss styles for report output.
package styles

import "github.com/charmbracelet/lipgloss"

// Report styles.
var (
	Header  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

var enabled = true

// SetEnabled toggles styling globally. When disabled, Render returns its
// input unchanged so piped output stays free of escape codes.
func SetEnabled(v bool) {
	enabled = v
}

// Enabled reports whether styling is active.
func Enabled() bool {
	return enabled
}

// Render applies style to s when styling is enabled.
func Render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
