package divider

// SizeProvider returns the divider thickness for a position (group index in
// grids): height of a horizontal rule, width of a vertical one.
type SizeProvider func(position int, ctx LayoutContext) int

// VisibilityProvider reports whether the divider at a position (group index
// in grids) is hidden.
type VisibilityProvider func(position int, ctx LayoutContext) bool

// MarginProvider returns the margins around a divider.
type MarginProvider interface {
	Top(position int, ctx LayoutContext) int
	Bottom(position int, ctx LayoutContext) int
	Left(position int, ctx LayoutContext) int
	Right(position int, ctx LayoutContext) int
}

// FixedMargins is a MarginProvider returning the same margins everywhere.
type FixedMargins struct {
	LeftMargin   int
	RightMargin  int
	TopMargin    int
	BottomMargin int
}

// UniformMargin returns the same margin on every side.
func UniformMargin(m int) FixedMargins {
	return FixedMargins{LeftMargin: m, RightMargin: m, TopMargin: m, BottomMargin: m}
}

func (f FixedMargins) Top(int, LayoutContext) int    { return f.TopMargin }
func (f FixedMargins) Bottom(int, LayoutContext) int { return f.BottomMargin }
func (f FixedMargins) Left(int, LayoutContext) int   { return f.LeftMargin }
func (f FixedMargins) Right(int, LayoutContext) int  { return f.RightMargin }

// NeverHide is the default VisibilityProvider.
func NeverHide(int, LayoutContext) bool { return false }

// FixedSize returns a SizeProvider yielding size everywhere.
func FixedSize(size int) SizeProvider {
	return func(int, LayoutContext) int { return size }
}

// HideAt hides the dividers at the listed positions.
func HideAt(positions ...int) VisibilityProvider {
	set := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return func(position int, _ LayoutContext) bool {
		_, ok := set[position]
		return ok
	}
}

var _ MarginProvider = FixedMargins{}
