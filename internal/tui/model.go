// Package tui is the interactive list demo: a feed rendered through the
// configured layout and divider decoration, with pull-to-refresh and
// load-more.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/listkit/internal/adapter"
	"github.com/alexisbeaulieu97/listkit/internal/config"
	"github.com/alexisbeaulieu97/listkit/internal/divider"
	"github.com/alexisbeaulieu97/listkit/internal/feed"
	"github.com/alexisbeaulieu97/listkit/internal/layout"
	"github.com/alexisbeaulieu97/listkit/internal/logger"
	"github.com/alexisbeaulieu97/listkit/internal/pull"
)

// NoMoreText is the footer text once every page has been loaded.
const NoMoreText = "No more items"

// Options configures the demo model.
type Options struct {
	Config *config.Config
	// Source overrides the feed built from Config.
	Source feed.Source
	// GridSpan is the span count the grid toggle switches to. Zero means 2.
	GridSpan int
	Logger   *logger.Logger
	Context  context.Context
}

// Model contains the Bubbletea state of the list demo.
type Model struct {
	cfg    *config.Config
	log    *logger.Logger
	ctx    context.Context
	source feed.Source

	items  *adapter.Adapter[string]
	footer *adapter.Footer
	pull   pull.Model
	deco   *divider.Decoration

	unobserve func()

	primary   layout.Manager
	alternate layout.Manager
	stack     *layout.Parallax
	gridSpan  int
	toggled   bool

	width     int
	height    int
	scroll    int
	page      int
	scrollSeq int
	err       error
	quitting  bool
}

// NewModel builds the demo model. It fails when the divider options in the
// configuration are inconsistent.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("tui")
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	source := opts.Source
	if source == nil {
		source = cfg.Source()
	}

	deco, err := cfg.Decoration(log)
	if err != nil {
		return Model{}, err
	}

	items := adapter.New[string]()
	footer := adapter.NewFooter(items)

	controller := pull.New(footer, pull.Callbacks{
		OnRefresh:  func() tea.Cmd { return requestCmd(refreshRequestedMsg{}) },
		OnLoadMore: func() tea.Cmd { return requestCmd(loadMoreRequestedMsg{}) },
	}, log)

	m := Model{
		log:      log,
		ctx:      ctx,
		source:   source,
		items:    items,
		footer:   footer,
		pull:     controller,
		gridSpan: opts.GridSpan,
		width:    80,
		height:   24,
	}
	m.useConfig(cfg, deco)
	return m, nil
}

// useConfig installs the layout and decoration described by cfg. The
// decoration's fullness cache is dropped on every adapter change.
func (m *Model) useConfig(cfg *config.Config, deco *divider.Decoration) {
	if m.unobserve != nil {
		m.unobserve()
	}
	items, log := m.items, m.log
	m.unobserve = items.Register(func(e adapter.Event) {
		deco.Invalidate()
		log.Debugf("adapter changed", map[string]any{"kind": e.Kind.String(), "items": items.ItemCount()})
	})

	m.cfg = cfg
	m.deco = deco
	m.primary = cfg.Manager()
	m.alternate = alternateManager(cfg, m.gridSpan)
	m.stack = nil
	if stack, ok := cfg.StackDecoration(); ok {
		m.stack = &stack
	}
	m.pull = m.pull.SetLoadMoreOffset(cfg.LoadMoreOffset())
}

// alternateManager is what the grid toggle switches to: a grid for list
// layouts and a vertical list for grids.
func alternateManager(cfg *config.Config, span int) layout.Manager {
	if cfg.Layout.Kind == config.KindGrid {
		return layout.Linear{Orientation: divider.Vertical, ItemExtent: cfg.Layout.ItemExtent}
	}
	if span <= 0 {
		span = 2
	}
	return layout.Grid{SpanCount: span, ItemExtent: cfg.Layout.ItemExtent}
}

// Init starts the first refresh.
func (m Model) Init() tea.Cmd {
	return requestCmd(initLoadMsg{})
}

// Items returns the loaded items.
func (m Model) Items() []string {
	return m.items.Items()
}

// Page returns the last page loaded.
func (m Model) Page() int {
	return m.page
}

// Scroll returns the scroll offset in cells.
func (m Model) Scroll() int {
	return m.scroll
}

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.pull.Loading()
}

// Grid reports whether the current layout is a grid.
func (m Model) Grid() bool {
	_, ok := m.manager().(layout.Grid)
	return ok
}

// Err returns the last fetch error.
func (m Model) Err() error {
	return m.err
}

func (m Model) manager() layout.Manager {
	if m.toggled {
		return m.alternate
	}
	return m.primary
}

// parallax returns the stacking decoration while the configured layout is
// shown.
func (m Model) parallax() *layout.Parallax {
	if m.toggled {
		return nil
	}
	return m.stack
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight, 0)
}

func (m Model) viewport() layout.Viewport {
	vp := m.cfg.Viewport(m.width, m.bodyHeight())
	vp.Scroll = m.scroll
	return vp
}

func (m Model) frame() frame {
	return frame{
		manager: m.manager(),
		deco:    m.deco,
		stack:   m.parallax(),
		footer:  m.footer,
		content: m.content,
		theme:   listTheme(),
	}
}

func (m Model) content(position int) []string {
	if m.footer.IsFooter(position) {
		return []string{m.pull.FooterText()}
	}
	item, ok := m.items.Item(position)
	if !ok {
		return nil
	}
	return []string{item}
}
