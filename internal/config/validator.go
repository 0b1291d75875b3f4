package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the
// configuration, then builds the divider decoration so invalid option
// combinations fail here rather than on first draw.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return listkiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateVersion(cfg.Version); err != nil {
		return err
	}

	if err := validateDivider(cfg); err != nil {
		return err
	}

	if err := validateLayout(cfg.Layout); err != nil {
		return err
	}

	if cfg.Feed.Source == "git" && cfg.Feed.GitPath == "" {
		return listkiterrors.NewValidationError("feed.git_path", "git source requires a repository path", nil)
	}

	if _, err := cfg.Decoration(nil); err != nil {
		return err
	}

	return nil
}

// supportedVersions is the range of configuration schema versions this
// build reads.
var supportedVersions = mustConstraint("< 2.0.0-0")

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}

func validateVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return listkiterrors.NewValidationError("version", "version must be a semantic version", err)
	}
	if !supportedVersions.Check(v) {
		return listkiterrors.NewValidationError("version",
			fmt.Sprintf("unsupported configuration version %s (supported %s)", v, supportedVersions), nil)
	}
	return nil
}

func validateDivider(cfg *Config) error {
	d := cfg.Divider
	pairs := []struct {
		a, b  bool
		field string
		other string
	}{
		{d.Color != "", d.ColorResource != "", "color_resource", "color"},
		{d.Drawable != nil, d.DrawableResource != "", "drawable_resource", "drawable"},
		{d.Size != nil, d.SizeResource != "", "size_resource", "size"},
		{d.Margin != nil, d.Margins != nil, "margins", "margin"},
		{d.Margin != nil || d.Margins != nil, d.MarginResource != "", "margin_resource", "margin"},
		{d.hasColor(), d.hasDrawable(), "drawable", "color"},
	}
	for _, p := range pairs {
		if p.a && p.b {
			return listkiterrors.NewValidationError(fieldForDivider(p.field),
				fmt.Sprintf("%s conflicts with %s", fieldForDivider(p.field), fieldForDivider(p.other)), nil)
		}
	}

	refs := []struct {
		name  string
		field string
		found bool
	}{
		{d.ColorResource, "color_resource", hasKey(cfg.Resources.Colors, d.ColorResource)},
		{d.DrawableResource, "drawable_resource", hasKey(cfg.Resources.Drawables, d.DrawableResource)},
		{d.SizeResource, "size_resource", hasKey(cfg.Resources.Dimensions, d.SizeResource)},
		{d.MarginResource, "margin_resource", hasKey(cfg.Resources.Dimensions, d.MarginResource)},
	}
	for _, r := range refs {
		if r.name != "" && !r.found {
			return listkiterrors.NewValidationError(fieldForDivider(r.field),
				fmt.Sprintf("references unknown resource %q", r.name), nil)
		}
	}

	return nil
}

func validateLayout(l LayoutConfig) error {
	if len(l.Spans) == 0 {
		return nil
	}
	if l.Kind != "grid" {
		return listkiterrors.NewValidationError("layout.spans", "spans require the grid layout", nil)
	}
	for i, size := range l.Spans {
		if size > l.SpanCount {
			return listkiterrors.NewValidationError(fmt.Sprintf("layout.spans[%d]", i),
				fmt.Sprintf("span %d exceeds span_count %d", size, l.SpanCount), nil)
		}
	}
	return nil
}

func hasKey[V any](m map[string]V, key string) bool {
	_, ok := m[key]
	return ok
}
