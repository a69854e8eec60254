// Package tui provides an interactive terminal UI for transcoding
// Solresol between its surface forms.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#FF6B6B") // titles
	colorAccent  = lipgloss.Color("#ffe66d") // active syntax
	colorMuted   = lipgloss.Color("#666666") // help text
	colorLabel   = lipgloss.Color("#a8dadc") // row labels
	colorText    = lipgloss.Color("#f1faee")
	colorError   = lipgloss.Color("#e63946")
	colorBorder  = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	syntaxStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	syntaxActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
