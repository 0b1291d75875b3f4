package layout

import (
	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// Linear stacks rows along one axis.
type Linear struct {
	Orientation divider.Orientation
	Reverse     bool
	// ItemExtent is the row length along the scroll axis; ExtentOf, when
	// set, overrides it per position.
	ItemExtent int
	ExtentOf   ExtentFunc
}

// Context implements Manager.
func (l Linear) Context(vp Viewport, dataRows int) divider.LayoutContext {
	return divider.LayoutContext{
		Orientation: l.Orientation,
		Reverse:     l.Reverse,
		Width:       vp.Width,
		Height:      vp.Height,
		Padding:     vp.Padding,
		SpanCount:   1,
		ItemCount:   dataRows,
	}
}

// Layout implements Manager. Reserved offsets are added around each row box,
// so a row's trailing inset is the gap before the next row.
func (l Linear) Layout(vp Viewport, totalRows, dataRows int, decorations ...ItemDecoration) (Result, error) {
	ctx := l.Context(vp, dataRows)
	res := newResult(ctx)
	vertical := l.Orientation == divider.Vertical
	if vertical {
		res.ViewportExtent = vp.Height - vp.Padding.Vertical()
	} else {
		res.ViewportExtent = vp.Width - vp.Padding.Horizontal()
	}

	cursor := 0
	for pos := 0; pos < totalRows; pos++ {
		off, err := offsetsFor(pos, ctx, decorations)
		if err != nil {
			return Result{}, err
		}
		lead, trail := l.axisInsets(off)
		start := cursor + lead
		end := start + extentOf(l.ItemExtent, l.ExtentOf, pos)
		cursor = end + trail

		res.add(l.place(pos, start, end, off, vp), vp, vertical)
	}
	res.ContentExtent = cursor
	return res, nil
}

// axisInsets returns the insets before and after a row in stacking order.
func (l Linear) axisInsets(off divider.Insets) (lead, trail int) {
	switch {
	case l.Orientation == divider.Vertical && !l.Reverse:
		return off.Top, off.Bottom
	case l.Orientation == divider.Vertical:
		return off.Bottom, off.Top
	case !l.Reverse:
		return off.Left, off.Right
	default:
		return off.Right, off.Left
	}
}

// place converts a row span measured from the start edge into surface
// coordinates.
func (l Linear) place(pos, start, end int, off divider.Insets, vp Viewport) divider.Child {
	child := divider.Child{Position: pos}
	if l.Orientation == divider.Vertical {
		child.Left = vp.Padding.Left + off.Left
		child.Right = vp.Width - vp.Padding.Right - off.Right
		if l.Reverse {
			origin := vp.Height - vp.Padding.Bottom + vp.Scroll
			child.Top, child.Bottom = origin-end, origin-start
		} else {
			origin := vp.Padding.Top - vp.Scroll
			child.Top, child.Bottom = origin+start, origin+end
		}
		return child
	}

	child.Top = vp.Padding.Top + off.Top
	child.Bottom = vp.Height - vp.Padding.Bottom - off.Bottom
	if l.Reverse {
		origin := vp.Width - vp.Padding.Right + vp.Scroll
		child.Left, child.Right = origin-end, origin-start
	} else {
		origin := vp.Padding.Left - vp.Scroll
		child.Left, child.Right = origin+start, origin+end
	}
	return child
}

var _ Manager = Linear{}
