package divider

// Orientation is the axis items are stacked along.
type Orientation int

const (
	// Vertical lists stack items top to bottom and draw horizontal rules.
	Vertical Orientation = iota
	// Horizontal lists place items left to right and draw vertical rules.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Rect holds four edge coordinates in cells, relative to the render surface.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns Right-Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Offset returns the rectangle translated by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Insets are four spacing values, used both for item offsets reserved around
// an item and for viewport padding.
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// IsZero reports whether every side is zero.
func (i Insets) IsZero() bool {
	return i.Left == 0 && i.Top == 0 && i.Right == 0 && i.Bottom == 0
}

// Horizontal returns Left+Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top+Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Add returns the side-wise sum of two insets.
func (i Insets) Add(o Insets) Insets {
	return Insets{Left: i.Left + o.Left, Top: i.Top + o.Top, Right: i.Right + o.Right, Bottom: i.Bottom + o.Bottom}
}

// LayoutContext is a read-only snapshot of the layout a decoration works
// against. A zero SpanCount means no layout manager is attached.
type LayoutContext struct {
	Orientation Orientation
	Reverse     bool
	Width       int
	Height      int
	Padding     Insets
	// SpanCount is 1 for linear layouts.
	SpanCount int
	// ItemCount counts data rows only; synthetic rows such as a loading
	// footer are excluded.
	ItemCount int
	// Spans is nil for linear layouts.
	Spans SpanLookup
}

// Attached reports whether a layout manager is bound to the context.
func (c LayoutContext) Attached() bool {
	return c.SpanCount > 0
}

// IsGrid reports whether the context describes a grid layout.
func (c LayoutContext) IsGrid() bool {
	return c.Spans != nil
}

// GroupIndex maps a position to its row (or column, for horizontal grids).
// Linear layouts return the position itself.
func (c LayoutContext) GroupIndex(position int) int {
	if !c.IsGrid() {
		return position
	}
	return c.Spans.GroupIndex(position, c.SpanCount)
}

// Child is a laid-out item the decoration draws around.
type Child struct {
	Position int
	Left     int
	Top      int
	Right    int
	Bottom   int
	// Margins are the item's own layout margins, outside its box.
	Margins Insets
	// TranslationX and TranslationY carry in-flight animation offsets.
	TranslationX int
	TranslationY int
}

// Box returns the child's laid-out rectangle without translation.
func (c Child) Box() Rect {
	return Rect{Left: c.Left, Top: c.Top, Right: c.Right, Bottom: c.Bottom}
}
