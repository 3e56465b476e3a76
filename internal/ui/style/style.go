// Package style provides the colors, icons and lipgloss styles shared by the log
// handler and command reports.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Violet = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Skip    = "-"
)

// Report styles.
var (
	Compiled = lipgloss.NewStyle().Foreground(Green)
	Cached   = lipgloss.NewStyle().Foreground(Slate)
	Failed   = lipgloss.NewStyle().Foreground(Red)
	Skipped  = lipgloss.NewStyle().Foreground(Yellow)
	Key      = lipgloss.NewStyle().Foreground(Violet).Bold(true)
)
