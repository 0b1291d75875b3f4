package divider

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

func requireConfigurationError(t *testing.T, err error, option string) {
	t.Helper()
	var cfgErr *listkiterrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, option, cfgErr.Option)
}

func TestBuilderRejectsStrokeWithSize(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(nil).Paint(Paint{StrokeWidth: 1}).Size(3).Build()
	requireConfigurationError(t, err, "size")
}

func TestBuilderRejectsStrokeWithColor(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder(nil).
		Paint(Paint{StrokeWidth: 1, Color: lipgloss.Color("33")}).
		Color(lipgloss.Color("196")).
		Build()
	requireConfigurationError(t, err, "color")
}

func TestBuilderColorOnlyDefaultsSize(t *testing.T) {
	t.Parallel()

	deco, err := NewBuilder(nil).Color(lipgloss.Color("#0000ff")).Build()
	require.NoError(t, err)

	policy := deco.Policy()
	require.Equal(t, KindSolid, policy.Style.Kind())

	size, err := policy.DividerSize(0, LayoutContext{SpanCount: 1, ItemCount: 1})
	require.NoError(t, err)
	require.Equal(t, DefaultSize, size)
}

func TestBuilderDefaultsToThemeDrawable(t *testing.T) {
	t.Parallel()

	deco, err := NewBuilder(nil).Build()
	require.NoError(t, err)

	policy := deco.Policy()
	require.Equal(t, KindDrawable, policy.Style.Kind())
	require.Nil(t, policy.Size)

	size, err := policy.DividerSize(0, LayoutContext{SpanCount: 1})
	require.NoError(t, err)
	require.Equal(t, DefaultDrawable.Size, size)
}

func TestBuilderStrokeSizeComesFromPaint(t *testing.T) {
	t.Parallel()

	deco, err := NewBuilder(nil).Paint(Paint{StrokeWidth: 3}).Build()
	require.NoError(t, err)

	size, err := deco.Policy().DividerSize(7, LayoutContext{SpanCount: 1})
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestBuilderValidatesLiterals(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		build  func() *Builder
		option string
	}{
		"negative size": {
			build:  func() *Builder { return NewBuilder(nil).Size(-1) },
			option: "size",
		},
		"negative stroke": {
			build:  func() *Builder { return NewBuilder(nil).Paint(Paint{StrokeWidth: -2}) },
			option: "strokewidth",
		},
		"negative drawable": {
			build:  func() *Builder { return NewBuilder(nil).Drawable(Drawable{Glyph: "=", Size: -1}) },
			option: "drawable",
		},
		"negative margin": {
			build:  func() *Builder { return NewBuilder(nil).Margins(-1, 0, 0, 0) },
			option: "margin[0]",
		},
		"nil paint provider": {
			build:  func() *Builder { return NewBuilder(nil).PaintProvider(nil) },
			option: "paint",
		},
		"nil visibility provider": {
			build:  func() *Builder { return NewBuilder(nil).VisibilityProvider(nil) },
			option: "visibility",
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.build().Build()
			requireConfigurationError(t, err, tc.option)
		})
	}
}

func TestBuilderResolvesResources(t *testing.T) {
	t.Parallel()

	res := ResourceTable{
		Colors:     map[string]lipgloss.TerminalColor{"accent": lipgloss.Color("#5f87ff")},
		Dimensions: map[string]int{"divider": 3, "inset": 1},
		Drawables:  map[string]Drawable{"dashed": {Glyph: "-", Size: 1}},
	}

	deco, err := NewBuilder(res).ColorResource("accent").SizeResource("divider").MarginResource("inset").Build()
	require.NoError(t, err)

	ctx := LayoutContext{SpanCount: 1, ItemCount: 2}
	policy := deco.Policy()
	size, err := policy.DividerSize(0, ctx)
	require.NoError(t, err)
	require.Equal(t, 3, size)
	require.Equal(t, 1, policy.Margin.Left(0, ctx))

	ink, err := policy.Ink(0, ctx)
	require.NoError(t, err)
	require.Equal(t, lipgloss.Color("#5f87ff"), ink.Background)

	deco, err = NewBuilder(res).DrawableResource("dashed").Build()
	require.NoError(t, err)
	ink, err = deco.Policy().Ink(0, ctx)
	require.NoError(t, err)
	require.Equal(t, "-", ink.Glyph)
}

func TestBuilderRejectsUnknownResources(t *testing.T) {
	t.Parallel()

	res := ResourceTable{}

	_, err := NewBuilder(res).ColorResource("missing").Build()
	requireConfigurationError(t, err, "colorResource")

	_, err = NewBuilder(nil).SizeResource("missing").Build()
	requireConfigurationError(t, err, "sizeResource")

	_, err = NewBuilder(res).DrawableResource("missing").Build()
	requireConfigurationError(t, err, "drawableResource")

	_, err = NewBuilder(res).MarginResources("a", "b", "c", "d").Build()
	requireConfigurationError(t, err, "marginResource")
}

func TestMatchDispatchesOnVariant(t *testing.T) {
	t.Parallel()

	name := func(s Style) string {
		return Match(s,
			func(DrawableStyle) string { return "drawable" },
			func(StrokeStyle) string { return "stroke" },
			func(SolidStyle) string { return "solid" },
		)
	}

	require.Equal(t, "drawable", name(DrawableStyle{}))
	require.Equal(t, "stroke", name(StrokeStyle{}))
	require.Equal(t, "solid", name(SolidStyle{}))
	require.Equal(t, "", name(nil))
}
