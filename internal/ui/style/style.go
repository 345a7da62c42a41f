// Package style provides the colors and icons shared by console output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Amber  = lipgloss.Color("#FBB040")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Prompt  = "?"
)
