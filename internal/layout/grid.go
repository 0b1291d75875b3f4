package layout

import (
	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// Grid lays rows of cells top to bottom. Each row is one span group; an item
// covers SpanSize columns starting at its span index. Rows past the data set
// take a full row each.
type Grid struct {
	SpanCount int
	// Spans defaults to UniformSpans.
	Spans      divider.SpanLookup
	ItemExtent int
	ExtentOf   ExtentFunc
}

func (g Grid) spanCount() int {
	return max(g.SpanCount, 1)
}

func (g Grid) spans() divider.SpanLookup {
	if g.Spans == nil {
		return divider.UniformSpans{}
	}
	return g.Spans
}

// Context implements Manager.
func (g Grid) Context(vp Viewport, dataRows int) divider.LayoutContext {
	return divider.LayoutContext{
		Orientation: divider.Vertical,
		Width:       vp.Width,
		Height:      vp.Height,
		Padding:     vp.Padding,
		SpanCount:   g.spanCount(),
		ItemCount:   dataRows,
		Spans:       g.spans(),
	}
}

// Layout implements Manager. Offsets shrink the item inside its cell; a row
// is as tall as its tallest cell including reserved insets.
func (g Grid) Layout(vp Viewport, totalRows, dataRows int, decorations ...ItemDecoration) (Result, error) {
	ctx := g.Context(vp, dataRows)
	res := newResult(ctx)
	res.ViewportExtent = vp.Height - vp.Padding.Vertical()

	span := ctx.SpanCount
	avail := vp.Width - vp.Padding.Horizontal()
	column := func(i int) int { return vp.Padding.Left + avail*i/span }

	rowTop, rowHeight := 0, 0
	group := -1
	for pos := 0; pos < totalRows; pos++ {
		off, err := offsetsFor(pos, ctx, decorations)
		if err != nil {
			return Result{}, err
		}

		col, size, next := 0, span, group+1
		if pos < dataRows {
			col = ctx.Spans.SpanIndex(pos, span)
			size = min(ctx.Spans.SpanSize(pos), span)
			next = ctx.GroupIndex(pos)
		}
		if next != group {
			rowTop += rowHeight
			rowHeight = 0
			group = next
		}

		extent := extentOf(g.ItemExtent, g.ExtentOf, pos)
		top := vp.Padding.Top - vp.Scroll + rowTop + off.Top
		child := divider.Child{
			Position: pos,
			Left:     column(col) + off.Left,
			Right:    column(col+size) - off.Right,
			Top:      top,
			Bottom:   top + extent,
		}
		rowHeight = max(rowHeight, off.Top+extent+off.Bottom)
		res.add(child, vp, true)
	}
	res.ContentExtent = rowTop + rowHeight
	return res, nil
}

var _ Manager = Grid{}
