package playerbar

import "github.com/charmbracelet/lipgloss"

// BarStyle frames the player bar in the wide layout.
var BarStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))
