package tui

import "github.com/charmbracelet/lipgloss"

// Colors - only include those that are actually used
var (
	dirColor     = lipgloss.Color("#3B82F6") // Blue
	fileColor    = lipgloss.Color("#10B981") // Green
	symlinkColor = lipgloss.Color("#06B6D4") // Cyan
	otherColor   = lipgloss.Color("#F59E0B") // Yellow
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	errorColor   = lipgloss.Color("#EF4444") // Red
)

// Styles
var (
	// App frame
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(dirColor).
			Padding(0, 1)

	// List items
	selectedStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Per-kind entry styles
	kindStyles = map[string]lipgloss.Style{
		"Directory": lipgloss.NewStyle().Foreground(dirColor),
		"File":      lipgloss.NewStyle().Foreground(fileColor),
		"Symlink":   lipgloss.NewStyle().Foreground(symlinkColor),
		"Other":     lipgloss.NewStyle().Foreground(otherColor),
	}

	// Status line
	errorBadge = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Help bar
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
