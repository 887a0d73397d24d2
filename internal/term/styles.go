package term

import "github.com/charmbracelet/lipgloss"

var (
	// KeyStyle renders issue keys.
	KeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	// StatusStyle renders workflow status names.
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	// LabelStyle renders field labels in detail views.
	LabelStyle = lipgloss.NewStyle().Faint(true)
	// TotalStyle renders summed durations in reports.
	TotalStyle = lipgloss.NewStyle().Bold(true)
)
