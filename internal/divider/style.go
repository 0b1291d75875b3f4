package divider

import "github.com/charmbracelet/lipgloss"

// Paint describes a stroked line. Its StrokeWidth is the divider size.
type Paint struct {
	Color       lipgloss.TerminalColor
	StrokeWidth int
	// Glyph overrides the line character; empty picks one by rule direction.
	Glyph string
}

// Drawable is a glyph pattern with an intrinsic size, stretched over the
// divider bounds.
type Drawable struct {
	Glyph      string
	Size       int
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

// DefaultDrawable mirrors a theme's list divider: a thin rule one cell thick.
var DefaultDrawable = Drawable{Size: 1, Foreground: lipgloss.Color("240")}

// PaintProvider returns the paint for a position (group index in grids).
type PaintProvider func(position int, ctx LayoutContext) Paint

// ColorProvider returns the solid color for a position.
type ColorProvider func(position int, ctx LayoutContext) lipgloss.TerminalColor

// DrawableProvider returns the drawable for a position.
type DrawableProvider func(position int, ctx LayoutContext) Drawable

// StyleKind names the active Style variant.
type StyleKind int

const (
	KindDrawable StyleKind = iota
	KindStroke
	KindSolid
)

func (k StyleKind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindSolid:
		return "solid"
	default:
		return "drawable"
	}
}

// Style selects how dividers are rendered. It is a closed set: DrawableStyle,
// StrokeStyle and SolidStyle are the only implementations.
type Style interface {
	Kind() StyleKind
	sealed()
}

// DrawableStyle stretches a drawable over the divider bounds.
type DrawableStyle struct {
	Drawable DrawableProvider
}

// StrokeStyle draws a line whose width comes from the paint.
type StrokeStyle struct {
	Paint PaintProvider
}

// SolidStyle draws a line in a solid color sized by the SizeProvider.
type SolidStyle struct {
	Color ColorProvider
}

func (DrawableStyle) Kind() StyleKind { return KindDrawable }
func (StrokeStyle) Kind() StyleKind   { return KindStroke }
func (SolidStyle) Kind() StyleKind    { return KindSolid }

func (DrawableStyle) sealed() {}
func (StrokeStyle) sealed()   {}
func (SolidStyle) sealed()    {}

// Match dispatches on the active variant.
func Match[T any](s Style, drawable func(DrawableStyle) T, stroke func(StrokeStyle) T, solid func(SolidStyle) T) T {
	switch v := s.(type) {
	case StrokeStyle:
		return stroke(v)
	case SolidStyle:
		return solid(v)
	case DrawableStyle:
		return drawable(v)
	default:
		var zero T
		return zero
	}
}

// Ink is a fully resolved appearance for one divider segment, ready for a
// renderer.
type Ink struct {
	Kind       StyleKind
	Glyph      string
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	// Width is the divider thickness in cells.
	Width int
}
