// Package style provides terminal styles for sheetgraph CLI output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorError   = lipgloss.AdaptiveColor{Light: "#f51818", Dark: "#ff3333"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#5c6773"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	// Success marks completed steps.
	Success = lipgloss.NewStyle().Foreground(colorSuccess)
	// Error marks failures.
	Error = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	// Dim renders secondary detail such as paths and counts.
	Dim = lipgloss.NewStyle().Foreground(colorDim)
	// Sheet renders sheet names.
	Sheet = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// Wrote formats a status line for a written snapshot.
func Wrote(path string) string {
	return Success.Render("✓") + " wrote " + Dim.Render(path)
}
