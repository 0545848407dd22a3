package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	ColorStory  = lipgloss.Color("#6366F1") // Indigo
	ColorDefect = lipgloss.Color("#F97316") // Orange

	ColorTextMuted  = lipgloss.Color("#9CA3AF") // Gray
	ColorTextBright = lipgloss.Color("#FFFFFF") // White
	ColorBorder     = lipgloss.Color("#374151") // Medium gray
)

// Message styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// Text styles
var (
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StoryStyle = lipgloss.NewStyle().
			Foreground(ColorStory).
			Bold(true)

	DefectStyle = lipgloss.NewStyle().
			Foreground(ColorDefect).
			Bold(true)
)

// Table styles
var (
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextBright).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
