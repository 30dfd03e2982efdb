// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the focused item
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Priority colors (1=red highest, 4=default)
var (
	Priority1Color = lipgloss.Color("#D0473D")
	Priority2Color = lipgloss.Color("#EA8811")
	Priority3Color = lipgloss.Color("#296FDF")
	Priority4Color = lipgloss.Color("")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the view header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Task styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskFocused is the style for the keyboard-focused task
	TaskFocused = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Strikethrough(true)

	// TaskDue is for due date display
	TaskDue = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingLeft(1)

	// TaskDueOverdue is for overdue tasks
	TaskDueOverdue = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(1)

	// SelectMarker is for the multi-select checkbox column
	SelectMarker = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Dialog styles
var (
	// Dialog is the bordered box for modal overlays
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is the heading inside a modal
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(SuccessColor)
)
