package divider

import (
	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

// Policy is the resolved appearance policy of a decoration. All methods are
// pure functions of their arguments.
type Policy struct {
	Style Style
	// Size is nil for stroke dividers, whose paint carries the width, and
	// may be nil for drawables, which fall back to their intrinsic size.
	Size                SizeProvider
	Margin              MarginProvider
	Visibility          VisibilityProvider
	ShowTrailingDivider bool
	PositionInsideItem  bool
}

// GridSegments holds the two rules drawn for one grid item.
type GridSegments struct {
	Group int
	// Horizontal is the rule under the item; HasHorizontal is false in the
	// last row.
	Horizontal    Rect
	HasHorizontal bool
	// Vertical is the rule right of the item; HasVertical is false in the
	// last column.
	Vertical    Rect
	HasVertical bool
}

// DividerSize resolves the thickness at position.
func (p Policy) DividerSize(position int, ctx LayoutContext) (int, error) {
	if stroke, ok := p.Style.(StrokeStyle); ok && stroke.Paint != nil {
		return stroke.Paint(position, ctx).StrokeWidth, nil
	}
	if p.Size != nil {
		return p.Size(position, ctx), nil
	}
	if drawable, ok := p.Style.(DrawableStyle); ok && drawable.Drawable != nil {
		return drawable.Drawable(position, ctx).Size, nil
	}
	return 0, listkiterrors.NewConfigurationError("size", "failed to get size: no paint, size or drawable source", nil)
}

// Hidden reports whether the divider at position is suppressed.
func (p Policy) Hidden(position int, ctx LayoutContext) bool {
	if p.Visibility == nil {
		return false
	}
	return p.Visibility(position, ctx)
}

// LinearBounds computes the divider after child in a single-span layout.
// Vertical lists get a horizontal rule, horizontal lists a vertical one.
func (p Policy) LinearBounds(child Child, ctx LayoutContext) (Rect, error) {
	if ctx.Orientation == Vertical {
		return p.horizontalBounds(child.Position, child, ctx)
	}
	return p.verticalBounds(child.Position, child, ctx)
}

// GridBounds computes the rule under child and the rule to its right. The
// appearance providers are queried with the row's group index.
func (p Policy) GridBounds(child Child, ctx LayoutContext, full bool) (GridSegments, error) {
	group := ctx.GroupIndex(child.Position)
	segments := GridSegments{Group: group}

	if !IsLastRow(child.Position, ctx) {
		rect, err := p.horizontalBounds(group, child, ctx)
		if err != nil {
			return GridSegments{}, err
		}
		segments.Horizontal = rect
		segments.HasHorizontal = true
	}
	if !IsLastColumn(child.Position, ctx, full) {
		rect, err := p.verticalBounds(group, child, ctx)
		if err != nil {
			return GridSegments{}, err
		}
		segments.Vertical = rect
		segments.HasVertical = true
	}
	return segments, nil
}

// ItemOffsets returns the space reserved around the item at position.
func (p Policy) ItemOffsets(position int, ctx LayoutContext, full bool) (Insets, error) {
	if p.PositionInsideItem || !ctx.Attached() || position < 0 || position >= ctx.ItemCount {
		return Insets{}, nil
	}

	if ctx.IsGrid() {
		if p.Hidden(ctx.GroupIndex(position), ctx) {
			return Insets{}, nil
		}
		columnLast := IsLastColumn(position, ctx, full)
		rowLast := IsLastRow(position, ctx)
		if columnLast && rowLast {
			return Insets{}, nil
		}
		size, err := p.DividerSize(position, ctx)
		if err != nil {
			return Insets{}, err
		}
		switch {
		case columnLast:
			return Insets{Bottom: size}, nil
		case rowLast:
			return Insets{Right: size}, nil
		default:
			return Insets{Right: size, Bottom: size}, nil
		}
	}

	if !p.ShowTrailingDivider && position >= ctx.ItemCount-1 {
		return Insets{}, nil
	}
	if p.Hidden(position, ctx) {
		return Insets{}, nil
	}
	size, err := p.DividerSize(position, ctx)
	if err != nil {
		return Insets{}, err
	}
	if ctx.Orientation == Vertical {
		if ctx.Reverse {
			return Insets{Top: size}, nil
		}
		return Insets{Bottom: size}, nil
	}
	if ctx.Reverse {
		return Insets{Left: size}, nil
	}
	return Insets{Right: size}, nil
}

// horizontalBounds spans the viewport width and sits below the child, or
// above it when the layout is reversed.
func (p Policy) horizontalBounds(position int, child Child, ctx LayoutContext) (Rect, error) {
	size, err := p.DividerSize(position, ctx)
	if err != nil {
		return Rect{}, err
	}
	tx, ty := child.TranslationX, child.TranslationY

	var bounds Rect
	bounds.Left = ctx.Padding.Left + p.margin().Left(position, ctx) + tx
	bounds.Right = ctx.Width - ctx.Padding.Right - p.margin().Right(position, ctx) + tx

	if p.kind() == KindDrawable {
		if ctx.Reverse {
			bounds.Bottom = child.Top - child.Margins.Top + ty
			bounds.Top = bounds.Bottom - size
		} else {
			bounds.Top = child.Bottom + child.Margins.Bottom + ty
			bounds.Bottom = bounds.Top + size
		}
	} else {
		half := size / 2
		if ctx.Reverse {
			bounds.Top = child.Top - child.Margins.Top - half + ty
		} else {
			bounds.Top = child.Bottom + child.Margins.Bottom + half + ty
		}
		bounds.Bottom = bounds.Top
	}

	if p.PositionInsideItem {
		if ctx.Reverse {
			bounds.Top += size
			bounds.Bottom += size
		} else {
			bounds.Top -= size
			bounds.Bottom -= size
		}
	}
	return bounds, nil
}

// verticalBounds spans the viewport height and sits right of the child, or
// left of it when the layout is reversed.
func (p Policy) verticalBounds(position int, child Child, ctx LayoutContext) (Rect, error) {
	size, err := p.DividerSize(position, ctx)
	if err != nil {
		return Rect{}, err
	}
	tx, ty := child.TranslationX, child.TranslationY

	var bounds Rect
	bounds.Top = ctx.Padding.Top + p.margin().Top(position, ctx) + ty
	bounds.Bottom = ctx.Height - ctx.Padding.Bottom - p.margin().Bottom(position, ctx) + ty

	if p.kind() == KindDrawable {
		if ctx.Reverse {
			bounds.Right = child.Left - child.Margins.Left + tx
			bounds.Left = bounds.Right - size
		} else {
			bounds.Left = child.Right + child.Margins.Right + tx
			bounds.Right = bounds.Left + size
		}
	} else {
		half := size / 2
		if ctx.Reverse {
			bounds.Left = child.Left - child.Margins.Left - half + tx
		} else {
			bounds.Left = child.Right + child.Margins.Right + half + tx
		}
		bounds.Right = bounds.Left
	}

	if p.PositionInsideItem {
		if ctx.Reverse {
			bounds.Left += size
			bounds.Right += size
		} else {
			bounds.Left -= size
			bounds.Right -= size
		}
	}
	return bounds, nil
}

// Ink resolves the appearance of the divider at position.
func (p Policy) Ink(position int, ctx LayoutContext) (Ink, error) {
	size, err := p.DividerSize(position, ctx)
	if err != nil {
		return Ink{}, err
	}
	return Match(p.Style,
		func(s DrawableStyle) Ink {
			d := s.Drawable(position, ctx)
			return Ink{Kind: KindDrawable, Glyph: d.Glyph, Foreground: d.Foreground, Background: d.Background, Width: size}
		},
		func(s StrokeStyle) Ink {
			paint := s.Paint(position, ctx)
			return Ink{Kind: KindStroke, Glyph: paint.Glyph, Foreground: paint.Color, Width: paint.StrokeWidth}
		},
		func(s SolidStyle) Ink {
			return Ink{Kind: KindSolid, Background: s.Color(position, ctx), Width: size}
		},
	), nil
}

func (p Policy) margin() MarginProvider {
	if p.Margin == nil {
		return FixedMargins{}
	}
	return p.Margin
}

func (p Policy) kind() StyleKind {
	if p.Style == nil {
		return KindDrawable
	}
	return p.Style.Kind()
}
