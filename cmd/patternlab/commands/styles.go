package commands

import "github.com/charmbracelet/lipgloss"

// Styles for catalog listings and descriptions. Traces themselves are
// printed unstyled so they stay byte-exact.
var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)
