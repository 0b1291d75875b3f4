package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/feed"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
)

func TestConfigBuildsDecoration(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Divider = DividerConfig{
		Paint:               &PaintConfig{Width: 2, Color: "33", Glyph: "="},
		Margins:             &MarginsConfig{Left: 1, Right: 2},
		HidePositions:       []int{0},
		ShowTrailingDivider: true,
	}
	require.NoError(t, ValidateConfig(cfg))

	deco, err := cfg.Decoration(nil)
	require.NoError(t, err)

	policy := deco.Policy()
	require.Equal(t, divider.KindStroke, policy.Style.Kind())
	require.True(t, policy.ShowTrailingDivider)
	ctx := divider.LayoutContext{SpanCount: 1, ItemCount: 3}
	require.True(t, policy.Hidden(0, ctx))
	require.Equal(t, 2, policy.Margin.Right(1, ctx))

	ink, err := policy.Ink(1, ctx)
	require.NoError(t, err)
	require.Equal(t, lipgloss.Color("33"), ink.Foreground)
	require.Equal(t, "=", ink.Glyph)
}

func TestConfigResourceTable(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Resources = ResourcesConfig{
		Colors:     map[string]string{"accent": "#5f87ff"},
		Dimensions: map[string]int{"thin": 1},
		Drawables:  map[string]DrawableConfig{"dots": {Glyph: "·", Size: 1, Foreground: "240"}},
	}

	table := cfg.ResourceTable()
	c, ok := table.Color("accent")
	require.True(t, ok)
	require.Equal(t, lipgloss.Color("#5f87ff"), c)

	d, ok := table.Drawable("dots")
	require.True(t, ok)
	require.Equal(t, "·", d.Glyph)
	require.Equal(t, lipgloss.Color("240"), d.Foreground)
	require.Nil(t, d.Background)
}

func TestConfigManager(t *testing.T) {
	t.Parallel()

	cfg := Default()
	linear, ok := cfg.Manager().(layout.Linear)
	require.True(t, ok)
	require.Equal(t, divider.Vertical, linear.Orientation)

	cfg.Layout.Orientation = "horizontal"
	cfg.Layout.Reverse = true
	linear = cfg.Manager().(layout.Linear)
	require.Equal(t, divider.Horizontal, linear.Orientation)
	require.True(t, linear.Reverse)

	cfg.Layout.Kind = KindGrid
	cfg.Layout.SpanCount = 3
	cfg.Layout.Spans = []int{2, 1}
	grid, ok := cfg.Manager().(layout.Grid)
	require.True(t, ok)
	require.Equal(t, 3, grid.SpanCount)
	require.Equal(t, 2, grid.Spans.SpanSize(2))
	require.Equal(t, 1, grid.Spans.SpanSize(3))

	_, ok = cfg.StackDecoration()
	require.False(t, ok)
	cfg.Layout.Kind = KindParallax
	cfg.Parallax.StackHeight = 2
	stack, ok := cfg.StackDecoration()
	require.True(t, ok)
	require.Equal(t, 2, stack.StackHeight)
	require.Equal(t, divider.Vertical, cfg.Manager().(layout.Linear).Orientation)
}

func TestConfigSourceAndViewport(t *testing.T) {
	t.Parallel()

	cfg := Default()
	latency := 10 * time.Millisecond
	cfg.Feed.Latency = &latency
	cfg.Feed.PageSize = 5

	sim, ok := cfg.Source().(feed.Simulated)
	require.True(t, ok)
	require.Equal(t, 5, sim.PageSize)
	require.Equal(t, latency, sim.Latency)

	cfg.Feed.Source = "git"
	cfg.Feed.GitPath = "/tmp/repo"
	gitlog, ok := cfg.Source().(feed.GitLog)
	require.True(t, ok)
	require.Equal(t, "/tmp/repo", gitlog.Path)

	cfg.Layout.Padding = Padding{Left: 1, Top: 2}
	vp := cfg.Viewport(40, 10)
	require.Equal(t, divider.Insets{Left: 1, Top: 2}, vp.Padding)
	require.Equal(t, 40, vp.Width)
}
