package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	tokenColor   = lipgloss.Color("39")
	numberColor  = lipgloss.Color("42")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	labelStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	emphasisStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	tokenStyle    = cellStyle.Foreground(tokenColor)
	numberStyle   = cellStyle.Foreground(numberColor)
	borderStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)
