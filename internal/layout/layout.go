// Package layout places list and grid items into a terminal viewport, the
// way a list view's layout manager does, and hosts the parallax stacking
// decoration.
package layout

import (
	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// ItemDecoration reserves space around items. Offsets from several
// decorations are summed.
type ItemDecoration interface {
	ItemOffsets(position int, ctx divider.LayoutContext) (divider.Insets, error)
}

// Manager lays out rows into a viewport.
type Manager interface {
	// Context describes the layout for a data set of dataRows items.
	Context(vp Viewport, dataRows int) divider.LayoutContext
	// Layout places totalRows rows, of which the first dataRows are data and
	// the rest synthetic rows such as a loading footer.
	Layout(vp Viewport, totalRows, dataRows int, decorations ...ItemDecoration) (Result, error)
}

// Viewport is the visible surface. Scroll is the distance, in cells, the
// content has moved toward its end.
type Viewport struct {
	Width   int
	Height  int
	Padding divider.Insets
	Scroll  int
}

// Result is one layout pass.
type Result struct {
	Context  divider.LayoutContext
	Children []divider.Child
	// FirstVisible and LastVisible are -1 when nothing is visible.
	FirstVisible int
	LastVisible  int
	// ContentExtent is the length of all rows along the scroll axis.
	ContentExtent int
	// ViewportExtent is the scrollable window length inside the padding.
	ViewportExtent int
}

// MaxScroll returns the largest useful scroll offset.
func (r Result) MaxScroll() int {
	return max(0, r.ContentExtent-r.ViewportExtent)
}

// ClampScroll limits scroll to the range the content allows.
func (r Result) ClampScroll(scroll int) int {
	return min(max(scroll, 0), r.MaxScroll())
}

// Child returns the laid-out child at position, if visible.
func (r Result) Child(position int) (divider.Child, bool) {
	for _, c := range r.Children {
		if c.Position == position {
			return c, true
		}
	}
	return divider.Child{}, false
}

func (r *Result) add(child divider.Child, vp Viewport, vertical bool) {
	visible := child.Right > 0 && child.Left < vp.Width
	if vertical {
		visible = child.Bottom > 0 && child.Top < vp.Height
	}
	if !visible {
		return
	}
	r.Children = append(r.Children, child)
	if r.FirstVisible < 0 || child.Position < r.FirstVisible {
		r.FirstVisible = child.Position
	}
	if child.Position > r.LastVisible {
		r.LastVisible = child.Position
	}
}

func newResult(ctx divider.LayoutContext) Result {
	return Result{Context: ctx, FirstVisible: -1, LastVisible: -1}
}

func offsetsFor(position int, ctx divider.LayoutContext, decorations []ItemDecoration) (divider.Insets, error) {
	var total divider.Insets
	for _, d := range decorations {
		if d == nil {
			continue
		}
		off, err := d.ItemOffsets(position, ctx)
		if err != nil {
			return divider.Insets{}, err
		}
		total = total.Add(off)
	}
	return total, nil
}

// ExtentFunc returns the length of the row at position along the scroll
// axis.
type ExtentFunc func(position int) int

func extentOf(fixed int, fn ExtentFunc, position int) int {
	if fn != nil {
		return max(fn(position), 0)
	}
	return max(fixed, 1)
}
