package divider

// SpanLookup is a grid layout's span assignment table. Implementations must
// be pure: the same arguments always yield the same answer until the data
// set changes.
type SpanLookup interface {
	// SpanIndex returns the column the item starts at within its row.
	SpanIndex(position, spanCount int) int
	// SpanSize returns how many columns the item occupies.
	SpanSize(position int) int
	// GroupIndex returns the row the item belongs to.
	GroupIndex(position, spanCount int) int
}

// UniformSpans gives every item a span of one.
type UniformSpans struct{}

// SpanIndex implements SpanLookup.
func (UniformSpans) SpanIndex(position, spanCount int) int {
	if spanCount <= 0 {
		return 0
	}
	return position % spanCount
}

// SpanSize implements SpanLookup.
func (UniformSpans) SpanSize(int) int { return 1 }

// GroupIndex implements SpanLookup.
func (UniformSpans) GroupIndex(position, spanCount int) int {
	if spanCount <= 0 {
		return 0
	}
	return position / spanCount
}

// SpanSizes derives span indices and groups from a per-item size function.
// Items that do not fit in the remainder of a row wrap to the next one.
type SpanSizes struct {
	sizeOf func(position int) int
}

// NewSpanSizes builds a lookup around sizeOf. Sizes below one count as one.
func NewSpanSizes(sizeOf func(position int) int) SpanSizes {
	return SpanSizes{sizeOf: sizeOf}
}

// SpanSlice is a convenience lookup over fixed sizes; positions past the end
// of sizes span one column.
func SpanSlice(sizes ...int) SpanSizes {
	cp := append([]int(nil), sizes...)
	return NewSpanSizes(func(position int) int {
		if position >= 0 && position < len(cp) {
			return cp[position]
		}
		return 1
	})
}

// SpanSize implements SpanLookup.
func (s SpanSizes) SpanSize(position int) int {
	if s.sizeOf == nil {
		return 1
	}
	if size := s.sizeOf(position); size > 0 {
		return size
	}
	return 1
}

// SpanIndex implements SpanLookup.
func (s SpanSizes) SpanIndex(position, spanCount int) int {
	positionSize := s.SpanSize(position)
	if positionSize >= spanCount {
		return 0
	}
	span := 0
	for i := 0; i < position; i++ {
		size := s.SpanSize(i)
		span += size
		if span == spanCount {
			span = 0
		} else if span > spanCount {
			span = size
		}
	}
	if span+positionSize <= spanCount {
		return span
	}
	return 0
}

// GroupIndex implements SpanLookup.
func (s SpanSizes) GroupIndex(position, spanCount int) int {
	span := 0
	group := 0
	positionSize := s.SpanSize(position)
	for i := 0; i < position; i++ {
		size := s.SpanSize(i)
		span += size
		if span == spanCount {
			span = 0
			group++
		} else if span > spanCount {
			span = size
			group++
		}
	}
	if span+positionSize > spanCount {
		group++
	}
	return group
}

var (
	_ SpanLookup = UniformSpans{}
	_ SpanLookup = SpanSizes{}
)
