package divider

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/listkit/internal/logger"
	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

// DefaultSize is the thickness used by solid dividers without a size.
const DefaultSize = 2

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// literals records the constant values handed to the builder so they can be
// validated in one pass on Build.
type literals struct {
	Size        *int  `validate:"omitempty,min=0"`
	StrokeWidth *int  `validate:"omitempty,min=0"`
	Drawable    *int  `validate:"omitempty,min=0"`
	Margin      []int `validate:"dive,min=0"`
}

// Builder configures a Decoration. Options are recorded as given and checked
// together on Build, so invalid combinations fail construction instead of the
// first draw.
type Builder struct {
	resources Resources
	log       *logger.Logger

	paint      PaintProvider
	color      ColorProvider
	drawable   DrawableProvider
	size       SizeProvider
	margin     MarginProvider
	visibility VisibilityProvider

	showTrailing bool
	insideItem   bool

	literals literals
	errs     []error
}

// NewBuilder starts a decoration. resources may be nil when no named
// resources are used.
func NewBuilder(resources Resources) *Builder {
	return &Builder{
		resources:  resources,
		margin:     FixedMargins{},
		visibility: NeverHide,
	}
}

// Logger attaches a logger to the built decoration.
func (b *Builder) Logger(l *logger.Logger) *Builder {
	b.log = l
	return b
}

// Paint draws every divider as a stroke with the given paint.
func (b *Builder) Paint(p Paint) *Builder {
	width := p.StrokeWidth
	b.literals.StrokeWidth = &width
	return b.PaintProvider(func(int, LayoutContext) Paint { return p })
}

// PaintProvider draws dividers as strokes with per-position paints.
func (b *Builder) PaintProvider(p PaintProvider) *Builder {
	if p == nil {
		b.fail("paint", "paint provider is nil")
	}
	b.paint = p
	return b
}

// Color draws every divider in a solid color.
func (b *Builder) Color(c lipgloss.TerminalColor) *Builder {
	return b.ColorProvider(func(int, LayoutContext) lipgloss.TerminalColor { return c })
}

// ColorResource resolves a named color.
func (b *Builder) ColorResource(name string) *Builder {
	c, ok := b.lookupColor(name)
	if !ok {
		b.fail("colorResource", fmt.Sprintf("unknown color resource %q", name))
		return b
	}
	return b.Color(c)
}

// ColorProvider draws dividers in per-position solid colors.
func (b *Builder) ColorProvider(p ColorProvider) *Builder {
	if p == nil {
		b.fail("color", "color provider is nil")
	}
	b.color = p
	return b
}

// Drawable stretches d over every divider.
func (b *Builder) Drawable(d Drawable) *Builder {
	size := d.Size
	b.literals.Drawable = &size
	return b.DrawableProvider(func(int, LayoutContext) Drawable { return d })
}

// DrawableResource resolves a named drawable.
func (b *Builder) DrawableResource(name string) *Builder {
	if b.resources == nil {
		b.fail("drawableResource", fmt.Sprintf("unknown drawable resource %q", name))
		return b
	}
	d, ok := b.resources.Drawable(name)
	if !ok {
		b.fail("drawableResource", fmt.Sprintf("unknown drawable resource %q", name))
		return b
	}
	return b.Drawable(d)
}

// DrawableProvider stretches per-position drawables over dividers.
func (b *Builder) DrawableProvider(p DrawableProvider) *Builder {
	if p == nil {
		b.fail("drawable", "drawable provider is nil")
	}
	b.drawable = p
	return b
}

// Size sets a fixed divider thickness.
func (b *Builder) Size(size int) *Builder {
	b.literals.Size = &size
	return b.SizeProvider(FixedSize(size))
}

// SizeResource resolves a named dimension as the divider thickness.
func (b *Builder) SizeResource(name string) *Builder {
	d, ok := b.lookupDimension(name)
	if !ok {
		b.fail("sizeResource", fmt.Sprintf("unknown dimension resource %q", name))
		return b
	}
	return b.Size(d)
}

// SizeProvider sets a per-position divider thickness.
func (b *Builder) SizeProvider(p SizeProvider) *Builder {
	if p == nil {
		b.fail("size", "size provider is nil")
	}
	b.size = p
	return b
}

// Margin applies the same margin on every side of a divider.
func (b *Builder) Margin(m int) *Builder {
	return b.Margins(m, m, m, m)
}

// Margins sets per-side divider margins.
func (b *Builder) Margins(left, right, top, bottom int) *Builder {
	b.literals.Margin = []int{left, right, top, bottom}
	b.margin = FixedMargins{LeftMargin: left, RightMargin: right, TopMargin: top, BottomMargin: bottom}
	return b
}

// MarginResource resolves a named dimension as a uniform margin.
func (b *Builder) MarginResource(name string) *Builder {
	return b.MarginResources(name, name, name, name)
}

// MarginResources resolves per-side margins from named dimensions.
func (b *Builder) MarginResources(left, right, top, bottom string) *Builder {
	values := make([]int, 0, 4)
	for _, name := range []string{left, right, top, bottom} {
		d, ok := b.lookupDimension(name)
		if !ok {
			b.fail("marginResource", fmt.Sprintf("unknown dimension resource %q", name))
			return b
		}
		values = append(values, d)
	}
	return b.Margins(values[0], values[1], values[2], values[3])
}

// MarginProvider sets per-position margins.
func (b *Builder) MarginProvider(p MarginProvider) *Builder {
	if p == nil {
		b.fail("margin", "margin provider is nil")
	}
	b.margin = p
	return b
}

// VisibilityProvider decides which dividers are hidden.
func (b *Builder) VisibilityProvider(p VisibilityProvider) *Builder {
	if p == nil {
		b.fail("visibility", "visibility provider is nil")
	}
	b.visibility = p
	return b
}

// HidePositions hides the dividers at the given positions (group indices in
// grids).
func (b *Builder) HidePositions(positions ...int) *Builder {
	return b.VisibilityProvider(HideAt(positions...))
}

// ShowTrailingDivider draws and reserves a divider after the last item of a
// linear list.
func (b *Builder) ShowTrailingDivider() *Builder {
	b.showTrailing = true
	return b
}

// PositionInsideItem draws dividers over the items instead of reserving
// space between them.
func (b *Builder) PositionInsideItem(inside bool) *Builder {
	b.insideItem = inside
	return b
}

// Build validates the options and returns the decoration.
func (b *Builder) Build() (*Decoration, error) {
	policy, err := b.Policy()
	if err != nil {
		return nil, err
	}
	return newDecoration(policy, b.log), nil
}

// Policy validates the options and returns the resolved appearance policy.
func (b *Builder) Policy() (Policy, error) {
	if err := b.check(); err != nil {
		return Policy{}, err
	}

	policy := Policy{
		Margin:              b.margin,
		Visibility:          b.visibility,
		ShowTrailingDivider: b.showTrailing,
		PositionInsideItem:  b.insideItem,
	}

	switch {
	case b.paint != nil:
		policy.Style = StrokeStyle{Paint: b.paint}
	case b.color != nil:
		policy.Style = SolidStyle{Color: b.color}
		policy.Size = b.size
		if policy.Size == nil {
			policy.Size = FixedSize(DefaultSize)
		}
	default:
		drawable := b.drawable
		if drawable == nil {
			drawable = func(int, LayoutContext) Drawable { return DefaultDrawable }
		}
		policy.Style = DrawableStyle{Drawable: drawable}
		policy.Size = b.size
	}

	return policy, nil
}

func (b *Builder) check() error {
	if len(b.errs) > 0 {
		return b.errs[0]
	}
	if err := validatorInstance().Struct(b.literals); err != nil {
		return convertValidationError(err)
	}
	if b.paint != nil {
		if b.color != nil {
			return listkiterrors.NewConfigurationError("color",
				"use the paint color to style a stroke divider; do not set a color provider together with a paint provider", nil)
		}
		if b.size != nil {
			return listkiterrors.NewConfigurationError("size",
				"use the paint stroke width to size a stroke divider; do not set a size provider together with a paint provider", nil)
		}
	}
	return nil
}

func (b *Builder) fail(option, message string) {
	b.errs = append(b.errs, listkiterrors.NewConfigurationError(option, message, nil))
}

func (b *Builder) lookupColor(name string) (lipgloss.TerminalColor, bool) {
	if b.resources == nil {
		return nil, false
	}
	return b.resources.Color(name)
}

func (b *Builder) lookupDimension(name string) (int, bool) {
	if b.resources == nil {
		return 0, false
	}
	return b.resources.Dimension(name)
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		option := strings.ToLower(fe.Field())
		return listkiterrors.NewConfigurationError(option,
			fmt.Sprintf("%s failed validation for tag '%s'", option, fe.Tag()), err)
	}
	return listkiterrors.NewConfigurationError("", err.Error(), err)
}
