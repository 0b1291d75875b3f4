package divider

// IsLastRow reports whether position shares a group with the final item.
// Linear contexts treat every item as its own row.
func IsLastRow(position int, ctx LayoutContext) bool {
	if ctx.ItemCount <= 0 {
		return true
	}
	return ctx.GroupIndex(position) == ctx.GroupIndex(ctx.ItemCount-1)
}

// IsLastColumn reports whether position ends its row: the next item starts a
// new group, or position is the final item and the last row is full. A short
// final row keeps the divider after its last item.
func IsLastColumn(position int, ctx LayoutContext, full bool) bool {
	if ctx.ItemCount <= 0 {
		return true
	}
	next := position + 1
	if next >= ctx.ItemCount {
		next = position
	}
	if ctx.GroupIndex(next) > ctx.GroupIndex(position) {
		return true
	}
	return position == ctx.ItemCount-1 && full
}

// LastRowFull reports whether the span sizes of the final row add up to the
// span count. Empty grids and linear layouts count as full.
func LastRowFull(ctx LayoutContext) bool {
	if !ctx.IsGrid() || ctx.ItemCount <= 0 {
		return true
	}
	first := 0
	for i := ctx.ItemCount - 1; i >= 0; i-- {
		if ctx.Spans.SpanIndex(i, ctx.SpanCount) == 0 {
			first = i
			break
		}
	}
	sum := 0
	for i := first; i < ctx.ItemCount; i++ {
		sum += ctx.Spans.SpanSize(i)
	}
	return sum == ctx.SpanCount
}

// FullnessTracker caches LastRowFull between data-set changes. Span lookups
// are stable between changes, so draws reuse the cached answer.
type FullnessTracker struct {
	full  bool
	valid bool
}

// Recompute refreshes the cache from ctx and returns the new value.
func (t *FullnessTracker) Recompute(ctx LayoutContext) bool {
	t.full = LastRowFull(ctx)
	t.valid = true
	return t.full
}

// Full returns the cached value, computing it from ctx on first use.
func (t *FullnessTracker) Full(ctx LayoutContext) bool {
	if !t.valid {
		return t.Recompute(ctx)
	}
	return t.full
}

// Invalidate drops the cached value.
func (t *FullnessTracker) Invalidate() {
	t.valid = false
}
