package divider

import "github.com/charmbracelet/lipgloss"

// Resources resolves named colors, dimensions and drawables, the way an
// application theme would.
type Resources interface {
	Color(name string) (lipgloss.TerminalColor, bool)
	Dimension(name string) (int, bool)
	Drawable(name string) (Drawable, bool)
}

// ResourceTable is a map-backed Resources.
type ResourceTable struct {
	Colors     map[string]lipgloss.TerminalColor
	Dimensions map[string]int
	Drawables  map[string]Drawable
}

// Color implements Resources.
func (t ResourceTable) Color(name string) (lipgloss.TerminalColor, bool) {
	c, ok := t.Colors[name]
	return c, ok
}

// Dimension implements Resources.
func (t ResourceTable) Dimension(name string) (int, bool) {
	d, ok := t.Dimensions[name]
	return d, ok
}

// Drawable implements Resources.
func (t ResourceTable) Drawable(name string) (Drawable, bool) {
	d, ok := t.Drawables[name]
	return d, ok
}

var _ Resources = ResourceTable{}
