package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
)

func TestCanvasTextHandlesWideRunes(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 2)
	written := c.Text(0, 0, 4, "日本語", lipgloss.NewStyle())
	require.Equal(t, 4, written)
	require.Equal(t, "日本\n    ", c.Plain())

	written = c.Text(1, 1, 10, "abcdef", lipgloss.NewStyle())
	require.Equal(t, 3, written)
	require.Equal(t, "日本\n abc", c.Plain())
}

func TestCanvasTextDropsEscapes(t *testing.T) {
	t.Parallel()

	c := NewCanvas(6, 1)
	written := c.Text(0, 0, 6, "\x1b[38;5;39m⣾\x1b[0m ok", lipgloss.NewStyle())
	require.Equal(t, 4, written)
	require.Equal(t, "⣾ ok  ", c.Plain())
}

func TestCanvasOverwriteSplitsWideGlyph(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 1)
	c.Text(0, 0, 4, "日本", lipgloss.NewStyle())
	c.Text(1, 0, 1, "x", lipgloss.NewStyle())
	require.Equal(t, " x本", c.Plain())
}

func TestCanvasFillRectClips(t *testing.T) {
	t.Parallel()

	c := NewCanvas(3, 2)
	c.FillRect(divider.Rect{Left: -2, Top: 1, Right: 2, Bottom: 9}, "#", lipgloss.NewStyle())
	require.Equal(t, "   \n## ", c.Plain())

	cell, ok := c.Cell(0, 1)
	require.True(t, ok)
	require.Equal(t, "#", cell.Glyph)
	_, ok = c.Cell(3, 0)
	require.False(t, ok)
}

func TestSegmentRectStraddlesStrokeLine(t *testing.T) {
	t.Parallel()

	stroke := divider.Segment{
		Rule:   divider.RuleHorizontal,
		Bounds: divider.Rect{Left: 0, Top: 5, Right: 10, Bottom: 5},
		Ink:    divider.Ink{Kind: divider.KindStroke, Width: 3},
	}
	require.Equal(t, divider.Rect{Left: 0, Top: 4, Right: 10, Bottom: 7}, SegmentRect(stroke))

	vertical := divider.Segment{
		Rule:   divider.RuleVertical,
		Bounds: divider.Rect{Left: 4, Top: 0, Right: 4, Bottom: 6},
		Ink:    divider.Ink{Kind: divider.KindSolid, Width: 2},
	}
	require.Equal(t, divider.Rect{Left: 3, Top: 0, Right: 5, Bottom: 6}, SegmentRect(vertical))

	drawable := divider.Segment{Bounds: divider.Rect{Top: 1, Bottom: 3, Right: 4}, Ink: divider.Ink{Kind: divider.KindDrawable, Width: 2}}
	require.Equal(t, drawable.Bounds, SegmentRect(drawable))
}

func TestInkStyleGlyphDefaults(t *testing.T) {
	t.Parallel()

	glyph, _ := InkStyle(divider.Ink{Kind: divider.KindStroke}, divider.RuleHorizontal)
	assert.Equal(t, HorizontalGlyph, glyph)
	glyph, _ = InkStyle(divider.Ink{Kind: divider.KindDrawable}, divider.RuleVertical)
	assert.Equal(t, VerticalGlyph, glyph)
	glyph, _ = InkStyle(divider.Ink{Kind: divider.KindSolid, Background: lipgloss.Color("4")}, divider.RuleVertical)
	assert.Equal(t, " ", glyph)
	glyph, _ = InkStyle(divider.Ink{Kind: divider.KindStroke, Glyph: "="}, divider.RuleHorizontal)
	assert.Equal(t, "=", glyph)
}

func linearScene(t *testing.T, deco *divider.Decoration, items []string, width, height int) Scene {
	t.Helper()

	vp := layout.Viewport{Width: width, Height: height}
	res, err := layout.Linear{ItemExtent: 1}.Layout(vp, len(items), len(items), deco)
	require.NoError(t, err)
	segments, err := deco.Draw(res.Context, res.Children)
	require.NoError(t, err)

	return Scene{
		Layout:   res,
		Segments: segments,
		Content:  func(pos int) []string { return []string{items[pos]} },
		Selected: -1,
		Theme:    DefaultTheme(),
	}
}

func TestSceneDrawsDividersBetweenRows(t *testing.T) {
	t.Parallel()

	deco, err := divider.NewBuilder(nil).Drawable(divider.Drawable{Glyph: "-", Size: 1}).Build()
	require.NoError(t, err)

	c := NewCanvas(6, 6)
	linearScene(t, deco, []string{"a", "b", "c"}, 6, 6).Paint(c)

	require.Equal(t, strings.Join([]string{
		"a     ",
		"------",
		"b     ",
		"------",
		"c     ",
		"      ",
	}, "\n"), c.Plain())
}

func TestSceneStrokeDividerFillsGap(t *testing.T) {
	t.Parallel()

	deco, err := divider.NewBuilder(nil).Paint(divider.Paint{StrokeWidth: 2, Glyph: "="}).Build()
	require.NoError(t, err)

	c := NewCanvas(3, 5)
	linearScene(t, deco, []string{"a", "b"}, 3, 5).Paint(c)

	require.Equal(t, strings.Join([]string{
		"a  ",
		"===",
		"===",
		"b  ",
		"   ",
	}, "\n"), c.Plain())
}

func TestSceneCardsPaintByElevation(t *testing.T) {
	t.Parallel()

	res := layout.Result{FirstVisible: 0, LastVisible: 1}
	scene := Scene{
		Layout: res,
		Cards: []layout.Card{
			{Child: divider.Child{Position: 1, Top: 0, Bottom: 2, Right: 3}, Elevation: 6},
			{Child: divider.Child{Position: 0, Top: 0, Bottom: 2, Right: 3}, Elevation: 1},
		},
		Content:  func(pos int) []string { return []string{strings.Repeat(string(rune('a'+pos)), 3)} },
		Selected: -1,
		Theme:    Theme{Opaque: true},
	}

	c := NewCanvas(3, 2)
	scene.Paint(c)
	require.Equal(t, "bbb\n   ", c.Plain())
}

func TestSceneFooterAndTranslation(t *testing.T) {
	t.Parallel()

	res := layout.Result{
		Children: []divider.Child{
			{Position: 0, Top: 0, Bottom: 1, Right: 5, TranslationY: 1},
		},
	}
	scene := Scene{
		Layout:   res,
		Content:  func(int) []string { return []string{"more"} },
		Footer:   func(pos int) bool { return pos == 0 },
		Selected: -1,
		Theme:    DefaultTheme(),
	}

	c := NewCanvas(5, 2)
	scene.Paint(c)
	require.Equal(t, "     \nmore ", c.Plain())
	require.NotEmpty(t, scene.Render(5, 2))
}
