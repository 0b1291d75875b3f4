package config

import (
	"time"
)

// Config is a listkit configuration document.
type Config struct {
	Version   string          `yaml:"version,omitempty" validate:"omitempty,semver"`
	Resources ResourcesConfig `yaml:"resources,omitempty"`
	Divider   DividerConfig   `yaml:"divider,omitempty"`
	Layout    LayoutConfig    `yaml:"layout,omitempty"`
	Parallax  ParallaxConfig  `yaml:"parallax,omitempty"`
	Feed      FeedConfig      `yaml:"feed,omitempty"`
	Pull      PullConfig      `yaml:"pull,omitempty"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// ResourcesConfig holds named values divider options may refer to.
type ResourcesConfig struct {
	Colors     map[string]string         `yaml:"colors,omitempty" validate:"omitempty,dive,keys,resource_name,endkeys,hexcolor_or_ansi"`
	Dimensions map[string]int            `yaml:"dimensions,omitempty" validate:"omitempty,dive,keys,resource_name,endkeys,min=0"`
	Drawables  map[string]DrawableConfig `yaml:"drawables,omitempty" validate:"omitempty,dive,keys,resource_name,endkeys"`
}

// DrawableConfig describes a glyph drawable.
type DrawableConfig struct {
	Glyph      string `yaml:"glyph" validate:"required"`
	Size       int    `yaml:"size,omitempty" validate:"min=0"`
	Foreground string `yaml:"foreground,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	Background string `yaml:"background,omitempty" validate:"omitempty,hexcolor_or_ansi"`
}

// PaintConfig describes a stroke.
type PaintConfig struct {
	Width int    `yaml:"width" validate:"min=0"`
	Color string `yaml:"color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	Glyph string `yaml:"glyph,omitempty"`
}

// MarginsConfig sets per-side divider margins.
type MarginsConfig struct {
	Left   int `yaml:"left,omitempty" validate:"min=0"`
	Right  int `yaml:"right,omitempty" validate:"min=0"`
	Top    int `yaml:"top,omitempty" validate:"min=0"`
	Bottom int `yaml:"bottom,omitempty" validate:"min=0"`
}

// DividerConfig mirrors the divider builder options. At most one of paint,
// color and drawable (or their resource forms) may be set.
type DividerConfig struct {
	Paint               *PaintConfig    `yaml:"paint,omitempty"`
	Color               string          `yaml:"color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	ColorResource       string          `yaml:"color_resource,omitempty" validate:"omitempty,resource_name"`
	Drawable            *DrawableConfig `yaml:"drawable,omitempty"`
	DrawableResource    string          `yaml:"drawable_resource,omitempty" validate:"omitempty,resource_name"`
	Size                *int            `yaml:"size,omitempty" validate:"omitempty,min=0"`
	SizeResource        string          `yaml:"size_resource,omitempty" validate:"omitempty,resource_name"`
	Margin              *int            `yaml:"margin,omitempty" validate:"omitempty,min=0"`
	Margins             *MarginsConfig  `yaml:"margins,omitempty"`
	MarginResource      string          `yaml:"margin_resource,omitempty" validate:"omitempty,resource_name"`
	HidePositions       []int           `yaml:"hide_positions,omitempty" validate:"omitempty,dive,min=0"`
	ShowTrailingDivider bool            `yaml:"show_trailing_divider,omitempty"`
	PositionInsideItem  bool            `yaml:"position_inside_item,omitempty"`
}

// Padding is viewport padding in cells.
type Padding struct {
	Left   int `yaml:"left,omitempty" validate:"min=0"`
	Top    int `yaml:"top,omitempty" validate:"min=0"`
	Right  int `yaml:"right,omitempty" validate:"min=0"`
	Bottom int `yaml:"bottom,omitempty" validate:"min=0"`
}

// LayoutConfig selects the layout manager.
type LayoutConfig struct {
	Kind        string  `yaml:"kind,omitempty" validate:"omitempty,oneof=linear grid parallax"`
	Orientation string  `yaml:"orientation,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	Reverse     bool    `yaml:"reverse,omitempty"`
	SpanCount   int     `yaml:"span_count,omitempty" validate:"omitempty,min=1,max=12"`
	Spans       []int   `yaml:"spans,omitempty" validate:"omitempty,dive,min=1"`
	ItemExtent  int     `yaml:"item_extent,omitempty" validate:"omitempty,min=1,max=20"`
	Padding     Padding `yaml:"padding,omitempty"`
}

// ParallaxConfig configures the stacked card layout.
type ParallaxConfig struct {
	StackHeight int `yaml:"stack_height,omitempty" validate:"min=0"`
}

// FeedConfig selects the demo data source.
type FeedConfig struct {
	Source     string         `yaml:"source,omitempty" validate:"omitempty,oneof=simulated git"`
	PageSize   int            `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=500"`
	ExtraPages *int           `yaml:"extra_pages,omitempty" validate:"omitempty,min=0"`
	Latency    *time.Duration `yaml:"latency,omitempty" validate:"omitempty,min=0"`
	GitPath    string         `yaml:"git_path,omitempty"`
}

// PullConfig tunes the pull controller.
type PullConfig struct {
	LoadMoreOffset *int `yaml:"load_more_offset,omitempty" validate:"omitempty,min=0"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}
