package tui

import "charm.land/lipgloss/v2"

// Color palette, calm and readable on dark terminals.
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	accent  = lipgloss.Color("#14B8A6") // Teal
	errCol  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	questionStyle = lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)

	answerStyle = lipgloss.NewStyle().
			Foreground(accent)

	metaStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errCol).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(primary).
			Padding(1, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim)
)
