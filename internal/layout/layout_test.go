package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

func boxes(res Result) []divider.Rect {
	out := make([]divider.Rect, 0, len(res.Children))
	for _, c := range res.Children {
		out = append(out, c.Box())
	}
	return out
}

func TestLinearStacksRowsWithDividerGaps(t *testing.T) {
	t.Parallel()

	deco, err := divider.NewBuilder(nil).Size(1).Build()
	require.NoError(t, err)

	vp := Viewport{Width: 20, Height: 30}
	res, err := Linear{ItemExtent: 3}.Layout(vp, 3, 3, deco)
	require.NoError(t, err)

	require.Equal(t, []divider.Rect{
		{Left: 0, Top: 0, Right: 20, Bottom: 3},
		{Left: 0, Top: 4, Right: 20, Bottom: 7},
		{Left: 0, Top: 8, Right: 20, Bottom: 11},
	}, boxes(res))
	require.Equal(t, 11, res.ContentExtent)
	require.Equal(t, 0, res.FirstVisible)
	require.Equal(t, 2, res.LastVisible)
}

func TestLinearReverseAndHorizontal(t *testing.T) {
	t.Parallel()

	vp := Viewport{Width: 20, Height: 20}

	res, err := Linear{Reverse: true, ItemExtent: 3}.Layout(vp, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []divider.Rect{
		{Left: 0, Top: 17, Right: 20, Bottom: 20},
		{Left: 0, Top: 14, Right: 20, Bottom: 17},
	}, boxes(res))
	require.True(t, res.Context.Reverse)

	res, err = Linear{Orientation: divider.Horizontal, ItemExtent: 4}.Layout(vp, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []divider.Rect{
		{Left: 0, Top: 0, Right: 4, Bottom: 20},
		{Left: 4, Top: 0, Right: 8, Bottom: 20},
	}, boxes(res))
}

func TestLinearScrollVisibility(t *testing.T) {
	t.Parallel()

	vp := Viewport{Width: 10, Height: 10, Scroll: 4}
	res, err := Linear{ItemExtent: 3}.Layout(vp, 5, 5)
	require.NoError(t, err)

	require.Equal(t, 1, res.FirstVisible)
	require.Equal(t, 4, res.LastVisible)
	require.Len(t, res.Children, 4)
	require.Equal(t, 5, res.MaxScroll())
	require.Equal(t, 5, res.ClampScroll(99))
	require.Equal(t, 0, res.ClampScroll(-3))

	_, ok := res.Child(0)
	require.False(t, ok)
	child, ok := res.Child(2)
	require.True(t, ok)
	require.Equal(t, 2, child.Top)
}

func TestLinearFooterRowIsNotDecorated(t *testing.T) {
	t.Parallel()

	deco, err := divider.NewBuilder(nil).Size(1).ShowTrailingDivider().Build()
	require.NoError(t, err)

	res, err := Linear{ExtentOf: func(pos int) int {
		if pos == 2 {
			return 1
		}
		return 2
	}}.Layout(Viewport{Width: 10, Height: 20}, 3, 2, deco)
	require.NoError(t, err)

	require.Equal(t, 2, res.Context.ItemCount)
	footer, ok := res.Child(2)
	require.True(t, ok)
	require.Equal(t, 6, footer.Top)
	require.Equal(t, 7, footer.Bottom)
	require.Equal(t, 7, res.ContentExtent)
}

func TestGridShrinksItemsInsideCells(t *testing.T) {
	t.Parallel()

	deco, err := divider.NewBuilder(nil).Size(1).Build()
	require.NoError(t, err)

	res, err := Grid{SpanCount: 2, ItemExtent: 3}.Layout(Viewport{Width: 20, Height: 20}, 4, 4, deco)
	require.NoError(t, err)

	require.Equal(t, []divider.Rect{
		{Left: 0, Top: 0, Right: 9, Bottom: 3},
		{Left: 10, Top: 0, Right: 20, Bottom: 3},
		{Left: 0, Top: 4, Right: 9, Bottom: 7},
		{Left: 10, Top: 4, Right: 20, Bottom: 7},
	}, boxes(res))
	require.Equal(t, 7, res.ContentExtent)
	require.True(t, res.Context.IsGrid())
}

func TestGridVariableSpansAndFooter(t *testing.T) {
	t.Parallel()

	grid := Grid{SpanCount: 3, Spans: divider.SpanSlice(2, 1, 1, 3), ItemExtent: 2}
	res, err := grid.Layout(Viewport{Width: 30, Height: 40}, 5, 4)
	require.NoError(t, err)

	require.Equal(t, []divider.Rect{
		{Left: 0, Top: 0, Right: 20, Bottom: 2},
		{Left: 20, Top: 0, Right: 30, Bottom: 2},
		{Left: 0, Top: 2, Right: 10, Bottom: 4},
		{Left: 0, Top: 4, Right: 30, Bottom: 6},
		{Left: 0, Top: 6, Right: 30, Bottom: 8},
	}, boxes(res))
}

func TestParallaxOffsetsAndScroll(t *testing.T) {
	t.Parallel()

	stack := Parallax{StackHeight: 2}
	manager := Linear{ItemExtent: 5}

	res, err := manager.Layout(Viewport{Width: 10, Height: 30}, 4, 4, stack)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 6, 9}, tops(res))
	require.Equal(t, 14, res.ContentExtent)

	cards := stack.OnScrolled(res)
	require.Len(t, cards, 4)
	elevations := make([]int, 0, len(cards))
	for _, c := range cards {
		elevations = append(elevations, c.Elevation)
	}
	assert.Equal(t, []int{1, 6, 11, 16}, elevations)
	assert.Equal(t, 0, cards[0].TranslationY)

	res, err = manager.Layout(Viewport{Width: 10, Height: 30, Scroll: 4}, 4, 4, stack)
	require.NoError(t, err)
	cards = stack.OnScrolled(res)
	assert.Equal(t, 2, cards[0].TranslationY)
	for _, c := range cards[1:] {
		assert.Zero(t, c.TranslationY)
	}
}

func TestParallaxDetachedAndEmpty(t *testing.T) {
	t.Parallel()

	stack := Parallax{StackHeight: 2}
	off, err := stack.ItemOffsets(0, divider.LayoutContext{ItemCount: 3})
	require.NoError(t, err)
	require.True(t, off.IsZero())

	require.Empty(t, stack.OnScrolled(Result{FirstVisible: -1, LastVisible: -1}))
}

func tops(res Result) []int {
	out := make([]int, 0, len(res.Children))
	for _, c := range res.Children {
		out = append(out, c.Top)
	}
	return out
}
