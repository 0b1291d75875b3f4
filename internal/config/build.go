package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/feed"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
	"github.com/alexisbeaulieu97/listkit/internal/logger"
	"github.com/alexisbeaulieu97/listkit/internal/pull"
)

// Layout kinds.
const (
	KindLinear   = "linear"
	KindGrid     = "grid"
	KindParallax = "parallax"
)

const (
	defaultColor    = "#0000ff"
	defaultSize     = 1
	defaultGridSpan = 2
)

func (d DividerConfig) hasColor() bool {
	return d.Color != "" || d.ColorResource != ""
}

func (d DividerConfig) hasDrawable() bool {
	return d.Drawable != nil || d.DrawableResource != ""
}

func (d DividerConfig) hasAppearance() bool {
	return d.Paint != nil || d.hasColor() || d.hasDrawable() || d.Size != nil || d.SizeResource != ""
}

func applyDefaults(cfg *Config) {
	if !cfg.Divider.hasAppearance() {
		size := defaultSize
		cfg.Divider.Color = defaultColor
		cfg.Divider.Size = &size
	}

	l := &cfg.Layout
	if l.Kind == "" {
		l.Kind = KindLinear
	}
	if l.Orientation == "" {
		l.Orientation = divider.Vertical.String()
	}
	if l.SpanCount == 0 {
		l.SpanCount = 1
		if l.Kind == KindGrid {
			l.SpanCount = defaultGridSpan
		}
	}
	if l.ItemExtent == 0 {
		l.ItemExtent = 1
	}

	f := &cfg.Feed
	if f.Source == "" {
		f.Source = "simulated"
	}
	if f.PageSize == 0 {
		f.PageSize = feed.DefaultPageSize
	}
	sim := feed.NewSimulated()
	if f.ExtraPages == nil {
		f.ExtraPages = &sim.ExtraPages
	}
	if f.Latency == nil {
		f.Latency = &sim.Latency
	}

	if cfg.Pull.LoadMoreOffset == nil {
		offset := pull.DefaultLoadMoreOffset
		cfg.Pull.LoadMoreOffset = &offset
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// ResourceTable converts the resources section for the divider builder.
func (c *Config) ResourceTable() divider.ResourceTable {
	table := divider.ResourceTable{
		Colors:     make(map[string]lipgloss.TerminalColor, len(c.Resources.Colors)),
		Dimensions: make(map[string]int, len(c.Resources.Dimensions)),
		Drawables:  make(map[string]divider.Drawable, len(c.Resources.Drawables)),
	}
	for name, value := range c.Resources.Colors {
		table.Colors[name] = lipgloss.Color(value)
	}
	for name, value := range c.Resources.Dimensions {
		table.Dimensions[name] = value
	}
	for name, value := range c.Resources.Drawables {
		table.Drawables[name] = value.drawable()
	}
	return table
}

// Builder translates the divider section into builder options. Errors are
// reported by Build.
func (c *Config) Builder(log *logger.Logger) *divider.Builder {
	d := c.Divider
	b := divider.NewBuilder(c.ResourceTable()).Logger(log)

	if d.Paint != nil {
		b.Paint(divider.Paint{StrokeWidth: d.Paint.Width, Color: color(d.Paint.Color), Glyph: d.Paint.Glyph})
	}
	if d.Color != "" {
		b.Color(lipgloss.Color(d.Color))
	}
	if d.ColorResource != "" {
		b.ColorResource(d.ColorResource)
	}
	if d.Drawable != nil {
		b.Drawable(d.Drawable.drawable())
	}
	if d.DrawableResource != "" {
		b.DrawableResource(d.DrawableResource)
	}
	if d.Size != nil {
		b.Size(*d.Size)
	}
	if d.SizeResource != "" {
		b.SizeResource(d.SizeResource)
	}
	if d.Margin != nil {
		b.Margin(*d.Margin)
	}
	if m := d.Margins; m != nil {
		b.Margins(m.Left, m.Right, m.Top, m.Bottom)
	}
	if d.MarginResource != "" {
		b.MarginResource(d.MarginResource)
	}
	if len(d.HidePositions) > 0 {
		b.HidePositions(d.HidePositions...)
	}
	if d.ShowTrailingDivider {
		b.ShowTrailingDivider()
	}
	return b.PositionInsideItem(d.PositionInsideItem)
}

// Decoration builds the divider decoration.
func (c *Config) Decoration(log *logger.Logger) (*divider.Decoration, error) {
	return c.Builder(log).Build()
}

// Spans returns the span lookup for grid layouts. Configured spans repeat
// as a pattern over the items.
func (c *Config) Spans() divider.SpanLookup {
	spans := c.Layout.Spans
	if len(spans) == 0 {
		return divider.UniformSpans{}
	}
	return divider.NewSpanSizes(func(position int) int {
		return spans[position%len(spans)]
	})
}

// Manager returns the configured layout manager.
func (c *Config) Manager() layout.Manager {
	l := c.Layout
	if l.Kind == KindGrid {
		return layout.Grid{SpanCount: l.SpanCount, Spans: c.Spans(), ItemExtent: l.ItemExtent}
	}
	orientation := divider.Vertical
	if l.Orientation == divider.Horizontal.String() {
		orientation = divider.Horizontal
	}
	if l.Kind == KindParallax {
		orientation = divider.Vertical
	}
	return layout.Linear{Orientation: orientation, Reverse: l.Reverse, ItemExtent: l.ItemExtent}
}

// StackDecoration returns the parallax decoration when the parallax layout
// is selected.
func (c *Config) StackDecoration() (layout.Parallax, bool) {
	if c.Layout.Kind != KindParallax {
		return layout.Parallax{}, false
	}
	return layout.Parallax{StackHeight: c.Parallax.StackHeight}, true
}

// Viewport returns a viewport of the given size with the configured
// padding.
func (c *Config) Viewport(width, height int) layout.Viewport {
	p := c.Layout.Padding
	return layout.Viewport{
		Width:   width,
		Height:  height,
		Padding: divider.Insets{Left: p.Left, Top: p.Top, Right: p.Right, Bottom: p.Bottom},
	}
}

// Source returns the configured feed.
func (c *Config) Source() feed.Source {
	f := c.Feed
	if f.Source == "git" {
		return feed.GitLog{Path: f.GitPath, PageSize: f.PageSize}
	}
	sim := feed.NewSimulated()
	sim.PageSize = f.PageSize
	if f.ExtraPages != nil {
		sim.ExtraPages = *f.ExtraPages
	}
	if f.Latency != nil {
		sim.Latency = *f.Latency
	}
	return sim
}

// LoadMoreOffset returns the pull controller threshold.
func (c *Config) LoadMoreOffset() int {
	if c.Pull.LoadMoreOffset == nil {
		return pull.DefaultLoadMoreOffset
	}
	return *c.Pull.LoadMoreOffset
}

// LoggerOptions returns logger options for the configured level.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.Log.Level, HumanReadable: c.Log.Human}
}

// Latency returns the simulated fetch latency.
func (c *Config) Latency() time.Duration {
	if c.Feed.Latency == nil {
		return 0
	}
	return *c.Feed.Latency
}

func (d DrawableConfig) drawable() divider.Drawable {
	return divider.Drawable{
		Glyph:      d.Glyph,
		Size:       d.Size,
		Foreground: color(d.Foreground),
		Background: color(d.Background),
	}
}

func color(s string) lipgloss.TerminalColor {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}
