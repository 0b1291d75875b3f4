package render

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
)

// Theme styles the rows of a scene.
type Theme struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
	// Opaque rows fill their whole box, hiding what is painted beneath.
	Opaque bool
}

// DefaultTheme returns the styles used by the demo.
func DefaultTheme() Theme {
	return Theme{
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	}
}

// Scene is one frame: the layout pass, the divider segments for its visible
// children and the row content.
type Scene struct {
	Layout   layout.Result
	Segments []divider.Segment
	// Cards, when set, replace Layout.Children and paint in elevation order.
	Cards []layout.Card
	// Content returns the text lines of the row at position.
	Content  func(position int) []string
	Footer   func(position int) bool
	Selected int
	Theme    Theme
}

// Paint draws the scene onto c. Dividers paint beneath the rows.
func (s Scene) Paint(c *Canvas) {
	PaintSegments(c, s.Segments)

	cards := s.Cards
	if cards == nil {
		cards = make([]layout.Card, 0, len(s.Layout.Children))
		for _, child := range s.Layout.Children {
			cards = append(cards, layout.Card{Child: child})
		}
	}
	cards = slices.Clone(cards)
	slices.SortStableFunc(cards, func(a, b layout.Card) int { return a.Elevation - b.Elevation })

	for _, card := range cards {
		s.paintRow(c, card.Child)
	}
}

// Render paints the scene on a fresh canvas and returns the styled frame.
func (s Scene) Render(width, height int) string {
	c := NewCanvas(width, height)
	s.Paint(c)
	return c.String()
}

func (s Scene) paintRow(c *Canvas, child divider.Child) {
	box := child.Box().Offset(child.TranslationX, child.TranslationY)
	if box.Width() <= 0 || box.Height() <= 0 {
		return
	}

	style := s.Theme.Item
	switch {
	case s.Footer != nil && s.Footer(child.Position):
		style = s.Theme.Footer
	case child.Position == s.Selected:
		style = s.Theme.Selected
	}

	if s.Theme.Opaque {
		c.FillRect(box, " ", style)
	}
	if s.Content == nil {
		return
	}
	for i, line := range s.Content(child.Position) {
		if i >= box.Height() {
			break
		}
		c.Text(box.Left, box.Top+i, box.Width(), line, style)
	}
}
