package divider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridContext(items, spanCount int, spans SpanLookup) LayoutContext {
	return LayoutContext{
		Orientation: Vertical,
		Width:       30,
		Height:      30,
		SpanCount:   spanCount,
		ItemCount:   items,
		Spans:       spans,
	}
}

func TestLastRowFull(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		ctx  LayoutContext
		full bool
	}{
		"empty grid":          {ctx: gridContext(0, 3, UniformSpans{}), full: true},
		"linear":              {ctx: linearContext(5), full: true},
		"short uniform row":   {ctx: gridContext(5, 3, UniformSpans{}), full: false},
		"exact uniform rows":  {ctx: gridContext(6, 3, UniformSpans{}), full: true},
		"wide items fill":     {ctx: gridContext(2, 3, SpanSlice(3, 3)), full: true},
		"mixed spans, single": {ctx: gridContext(5, 3, SpanSlice(2, 1, 1, 3, 1)), full: false},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.full, LastRowFull(tc.ctx))
		})
	}
}

func TestIsLastColumnMixedSpans(t *testing.T) {
	t.Parallel()

	ctx := gridContext(5, 3, SpanSlice(2, 1, 1, 3, 1))
	full := LastRowFull(ctx)
	require.False(t, full)

	got := make([]bool, 0, ctx.ItemCount)
	for pos := 0; pos < ctx.ItemCount; pos++ {
		got = append(got, IsLastColumn(pos, ctx, full))
	}
	require.Equal(t, []bool{false, true, true, true, false}, got)
}

func TestIsLastRow(t *testing.T) {
	t.Parallel()

	ctx := gridContext(7, 3, UniformSpans{})
	for pos := 0; pos < 6; pos++ {
		assert.False(t, IsLastRow(pos, ctx), "position %d", pos)
	}
	assert.True(t, IsLastRow(6, ctx))

	assert.True(t, IsLastRow(0, gridContext(0, 3, UniformSpans{})))
	assert.True(t, IsLastColumn(0, gridContext(0, 3, UniformSpans{}), false))
}

func TestFullnessTrackerCaches(t *testing.T) {
	t.Parallel()

	var tracker FullnessTracker
	short := gridContext(5, 3, UniformSpans{})
	exact := gridContext(6, 3, UniformSpans{})

	require.False(t, tracker.Full(short))
	// the cached answer survives until a recompute
	require.False(t, tracker.Full(exact))

	require.True(t, tracker.Recompute(exact))
	require.True(t, tracker.Full(short))

	tracker.Invalidate()
	require.False(t, tracker.Full(short))
}
