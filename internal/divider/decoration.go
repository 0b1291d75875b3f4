package divider

import (
	"github.com/alexisbeaulieu97/listkit/internal/logger"
)

// Rule is the direction a divider line runs in.
type Rule int

const (
	RuleHorizontal Rule = iota
	RuleVertical
)

// Segment is one divider a renderer should paint.
type Segment struct {
	Position int
	Group    int
	Rule     Rule
	Bounds   Rect
	Ink      Ink
}

// Decoration draws dividers between the items of a linear or grid layout
// and reserves space for them. Build one with Builder.
type Decoration struct {
	policy   Policy
	fullness FullnessTracker
	log      *logger.Logger
}

func newDecoration(policy Policy, log *logger.Logger) *Decoration {
	if log == nil {
		log = logger.Nop()
	}
	return &Decoration{policy: policy, log: log.WithComponent("divider")}
}

// Policy returns the resolved appearance policy.
func (d *Decoration) Policy() Policy {
	return d.policy
}

// OnDataSetChanged recomputes the grid fullness cache. Call it whenever the
// adapter reports a data-set change.
func (d *Decoration) OnDataSetChanged(ctx LayoutContext) {
	full := d.fullness.Recompute(ctx)
	d.log.Debugf("data set changed", map[string]any{
		"items": ctx.ItemCount,
		"spans": ctx.SpanCount,
		"full":  full,
	})
}

// Invalidate drops the fullness cache; the next geometry call recomputes it
// from its context. Use it from adapter observers that have no layout
// context at hand.
func (d *Decoration) Invalidate() {
	d.fullness.Invalidate()
}

// GridFull returns the cached fullness of the last grid row.
func (d *Decoration) GridFull(ctx LayoutContext) bool {
	return d.fullness.Full(ctx)
}

// IsLastRow reports whether position is in the final grid row.
func (d *Decoration) IsLastRow(position int, ctx LayoutContext) bool {
	return IsLastRow(position, ctx)
}

// IsLastColumn reports whether position ends its grid row.
func (d *Decoration) IsLastColumn(position int, ctx LayoutContext) bool {
	return IsLastColumn(position, ctx, d.GridFull(ctx))
}

// LinearBounds computes the divider after child in a linear layout.
func (d *Decoration) LinearBounds(child Child, ctx LayoutContext) (Rect, error) {
	return d.policy.LinearBounds(child, ctx)
}

// GridBounds computes the rules under and right of child in a grid layout.
func (d *Decoration) GridBounds(child Child, ctx LayoutContext) (GridSegments, error) {
	return d.policy.GridBounds(child, ctx, d.GridFull(ctx))
}

// ItemOffsets returns the insets to reserve around the item at position.
// Detached contexts and positions outside the data rows get zero insets.
func (d *Decoration) ItemOffsets(position int, ctx LayoutContext) (Insets, error) {
	return d.policy.ItemOffsets(position, ctx, d.GridFull(ctx))
}

// Draw returns the divider segments for the visible children, in layout
// order. A detached context yields no segments.
func (d *Decoration) Draw(ctx LayoutContext, children []Child) ([]Segment, error) {
	if !ctx.Attached() || ctx.ItemCount <= 0 {
		return nil, nil
	}
	if ctx.IsGrid() {
		return d.drawGrid(ctx, children)
	}
	return d.drawLinear(ctx, children)
}

func (d *Decoration) drawLinear(ctx LayoutContext, children []Child) ([]Segment, error) {
	rule := RuleHorizontal
	if ctx.Orientation == Horizontal {
		rule = RuleVertical
	}

	segments := make([]Segment, 0, len(children))
	last := -1
	for _, child := range children {
		pos := child.Position
		// Children behind the previous one are leftovers of a running
		// removal animation.
		if pos < last {
			continue
		}
		last = pos

		if pos >= ctx.ItemCount {
			continue
		}
		if !d.policy.ShowTrailingDivider && pos >= ctx.ItemCount-1 {
			continue
		}
		if d.policy.Hidden(pos, ctx) {
			continue
		}

		bounds, err := d.policy.LinearBounds(child, ctx)
		if err != nil {
			return nil, err
		}
		ink, err := d.policy.Ink(pos, ctx)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{Position: pos, Group: pos, Rule: rule, Bounds: bounds, Ink: ink})
	}
	return segments, nil
}

func (d *Decoration) drawGrid(ctx LayoutContext, children []Child) ([]Segment, error) {
	full := d.GridFull(ctx)

	segments := make([]Segment, 0, len(children)*2)
	last := -1
	for _, child := range children {
		pos := child.Position
		if pos < last {
			continue
		}
		last = pos

		if pos >= ctx.ItemCount {
			continue
		}
		group := ctx.GroupIndex(pos)
		if d.policy.Hidden(group, ctx) {
			continue
		}

		grid, err := d.policy.GridBounds(child, ctx, full)
		if err != nil {
			return nil, err
		}
		if !grid.HasHorizontal && !grid.HasVertical {
			continue
		}
		ink, err := d.policy.Ink(group, ctx)
		if err != nil {
			return nil, err
		}
		if grid.HasHorizontal {
			segments = append(segments, Segment{Position: pos, Group: group, Rule: RuleHorizontal, Bounds: grid.Horizontal, Ink: ink})
		}
		if grid.HasVertical {
			segments = append(segments, Segment{Position: pos, Group: group, Rule: RuleVertical, Bounds: grid.Vertical, Ink: ink})
		}
	}
	return segments, nil
}
