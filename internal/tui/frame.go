package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/listkit/internal/adapter"
	"github.com/alexisbeaulieu97/listkit/internal/config"
	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
	"github.com/alexisbeaulieu97/listkit/internal/logger"
	"github.com/alexisbeaulieu97/listkit/internal/render"
)

// frame is what one paint of the list body needs.
type frame struct {
	manager layout.Manager
	deco    *divider.Decoration
	stack   *layout.Parallax
	footer  *adapter.Footer
	content func(position int) []string
	theme   render.Theme
}

func (f frame) decorations() []layout.ItemDecoration {
	decorations := []layout.ItemDecoration{f.deco}
	if f.stack != nil {
		decorations = append(decorations, *f.stack)
	}
	return decorations
}

// layout runs a layout pass, clamping vp.Scroll to the content. The
// returned viewport carries the clamped scroll.
func (f frame) layout(vp layout.Viewport) (layout.Result, layout.Viewport, error) {
	rows, data := f.footer.ItemCount(), f.footer.DataCount()
	res, err := f.manager.Layout(vp, rows, data, f.decorations()...)
	if err != nil {
		return layout.Result{}, vp, err
	}
	if clamped := res.ClampScroll(vp.Scroll); clamped != vp.Scroll {
		vp.Scroll = clamped
		res, err = f.manager.Layout(vp, rows, data, f.decorations()...)
		if err != nil {
			return layout.Result{}, vp, err
		}
	}
	return res, vp, nil
}

func (f frame) scene(res layout.Result) (render.Scene, error) {
	segments, err := f.deco.Draw(res.Context, res.Children)
	if err != nil {
		return render.Scene{}, err
	}
	scene := render.Scene{
		Layout:   res,
		Segments: segments,
		Content:  f.content,
		Footer:   f.footer.IsFooter,
		Selected: -1,
		Theme:    f.theme,
	}
	if f.stack != nil {
		scene.Cards = f.stack.OnScrolled(res)
		scene.Theme.Opaque = true
	}
	return scene, nil
}

func (f frame) render(vp layout.Viewport) (string, error) {
	res, vp, err := f.layout(vp)
	if err != nil {
		return "", err
	}
	scene, err := f.scene(res)
	if err != nil {
		return "", err
	}
	return scene.Render(vp.Width, vp.Height), nil
}

// RenderFrame paints items once with the layout and decoration from cfg.
// A positive grid forces a grid layout with that many spans.
func RenderFrame(cfg *config.Config, items []string, grid, width, height int, log *logger.Logger) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	deco, err := cfg.Decoration(log)
	if err != nil {
		return "", err
	}
	data := adapter.New(items...)
	f := frame{
		manager: cfg.Manager(),
		deco:    deco,
		footer:  adapter.NewFooter(data),
		content: func(position int) []string {
			if item, ok := data.Item(position); ok {
				return []string{item}
			}
			return nil
		},
		theme: listTheme(),
	}
	if grid > 0 {
		f.manager = layout.Grid{SpanCount: grid, ItemExtent: cfg.Layout.ItemExtent}
	} else if stack, ok := cfg.StackDecoration(); ok {
		f.stack = &stack
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	return f.render(cfg.Viewport(width, height))
}
