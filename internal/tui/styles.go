package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	categoryStyle = lipgloss.NewStyle().Underline(true)
	chipStyle     = lipgloss.NewStyle().Padding(0, 1)
	chipOnStyle   = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	overlayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
