package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/pull"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("listkit • %s", m.layoutName()))
	if indicator := m.pull.Indicator(); indicator != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", indicatorStyle.Render(indicator))
	}

	body, err := m.frame().render(m.viewport())
	if err != nil {
		body = errorStyle.Render(err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine())
}

func (m Model) layoutName() string {
	if m.Grid() {
		return "grid"
	}
	if m.parallax() != nil {
		return "parallax"
	}
	return "list"
}

func (m Model) statusLine() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	parts := []string{
		fmt.Sprintf("%d items", m.items.ItemCount()),
		fmt.Sprintf("page %d", m.page),
	}
	if d := m.pull.Direction(); d != pull.None {
		parts = append(parts, "scrolling "+d.String())
	}
	status := statusStyle.Render(strings.Join(parts, " • "))
	return status + "  " + helpStyle.Render("j/k scroll • r refresh • g grid • q quit")
}
