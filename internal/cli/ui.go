package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleNumber for numeric values in summaries.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleSuccess for success messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
