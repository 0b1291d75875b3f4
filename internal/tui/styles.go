package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/render"
)

// chromeHeight is the number of lines around the list body.
const chromeHeight = 2

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func listTheme() render.Theme {
	theme := render.DefaultTheme()
	theme.Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true)
	return theme
}
