package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	normalStyle  = lipgloss.NewStyle()
	trackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func panelStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	if focused {
		return s.BorderForeground(lipgloss.Color("62"))
	}
	return s.BorderForeground(lipgloss.Color("240"))
}
