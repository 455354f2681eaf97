// Package style holds the lipgloss styles used in command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ColorBranchName styles a branch name
func ColorBranchName(name string) string {
	return branchStyle.Render(name)
}

// ColorTag styles a tag name
func ColorTag(name string) string {
	return tagStyle.Render(name)
}

// ColorVersion styles a version
func ColorVersion(version string) string {
	return versionStyle.Render(version)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// DisableColor strips colors from all subsequent output
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
