package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// Line glyphs used when an ink carries none.
const (
	HorizontalGlyph = "─"
	VerticalGlyph   = "│"
)

// SegmentRect returns the cells a segment covers. Drawable segments cover
// their bounds. Stroke and solid segments are zero-thickness lines; they
// cover a band Ink.Width cells thick that straddles the line.
func SegmentRect(s divider.Segment) divider.Rect {
	if s.Ink.Kind == divider.KindDrawable {
		return s.Bounds
	}
	r := s.Bounds
	half := s.Ink.Width / 2
	if s.Rule == divider.RuleHorizontal {
		r.Top -= half
		r.Bottom = r.Top + s.Ink.Width
	} else {
		r.Left -= half
		r.Right = r.Left + s.Ink.Width
	}
	return r
}

// InkStyle converts an ink to a cell style and glyph.
func InkStyle(ink divider.Ink, rule divider.Rule) (string, lipgloss.Style) {
	style := lipgloss.NewStyle()
	if ink.Foreground != nil {
		style = style.Foreground(ink.Foreground)
	}
	if ink.Background != nil {
		style = style.Background(ink.Background)
	}

	glyph := ink.Glyph
	if glyph != "" {
		return glyph, style
	}
	if ink.Kind == divider.KindSolid {
		return " ", style
	}
	if rule == divider.RuleHorizontal {
		return HorizontalGlyph, style
	}
	return VerticalGlyph, style
}

// PaintSegments paints divider segments in order.
func PaintSegments(c *Canvas, segments []divider.Segment) {
	for _, s := range segments {
		if s.Ink.Width <= 0 {
			continue
		}
		glyph, style := InkStyle(s.Ink, s.Rule)
		c.FillRect(SegmentRect(s), glyph, style)
	}
}
