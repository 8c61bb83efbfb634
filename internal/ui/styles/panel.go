package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style for the playlist and popup.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
