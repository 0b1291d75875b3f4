// Package pull drives pull-to-refresh and load-more for a list: it tracks the
// scroll direction, keeps at most one fetch in flight and manages the refresh
// indicator and loading footer.
package pull

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/listkit/internal/adapter"
	"github.com/alexisbeaulieu97/listkit/internal/logger"
)

const (
	// DefaultLoadMoreOffset is how many rows before the end load-more fires.
	DefaultLoadMoreOffset = 3
	// HideDelay is how long the refresh indicator stays after completion.
	HideDelay = 500 * time.Millisecond
)

var indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

// Callbacks start fetches. Each returns the command that performs the fetch;
// the host calls SetComplete when the fetch reports back.
type Callbacks struct {
	OnRefresh  func() tea.Cmd
	OnLoadMore func() tea.Cmd
}

// Model is the pull controller. It is a value type updated the bubbletea way;
// the footer it drives is shared.
type Model struct {
	callbacks      Callbacks
	footer         *adapter.Footer
	tracker        ScrollTracker
	spinner        spinner.Model
	log            *logger.Logger
	loadMoreOffset int
	loading        bool
	hasMore        bool
	refreshing     bool
}

// New creates a controller driving footer. log may be nil.
func New(footer *adapter.Footer, callbacks Callbacks, log *logger.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = indicatorStyle
	if log == nil {
		log = logger.Nop()
	}
	return Model{
		callbacks:      callbacks,
		footer:         footer,
		spinner:        s,
		log:            log.WithComponent("pull"),
		loadMoreOffset: DefaultLoadMoreOffset,
	}
}

// SetLoadMoreOffset changes how early load-more fires.
func (m Model) SetLoadMoreOffset(offset int) Model {
	m.loadMoreOffset = offset
	return m
}

// Loading reports whether a fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// Refreshing reports whether the refresh indicator is shown.
func (m Model) Refreshing() bool { return m.refreshing }

// HasMore reports whether more pages can be loaded.
func (m Model) HasMore() bool { return m.hasMore }

// Direction returns the current scroll direction.
func (m Model) Direction() Direction { return m.tracker.Direction() }

// InitLoad shows the refresh indicator and starts the first refresh.
func (m Model) InitLoad() (Model, tea.Cmd) {
	if m.callbacks.OnRefresh == nil {
		return m, nil
	}
	m.refreshing = true
	m.loading = true
	m.log.Debug("initial load")
	return m, tea.Batch(m.spinner.Tick, m.callbacks.OnRefresh())
}

// Refresh handles a pull-to-refresh gesture. It is a no-op while a fetch is
// in flight.
func (m Model) Refresh() (Model, tea.Cmd) {
	if m.callbacks.OnRefresh == nil || m.loading {
		return m, nil
	}
	m.refreshing = true
	m.loading = true
	m.log.Debug("refresh requested")
	return m, tea.Batch(m.spinner.Tick, m.callbacks.OnRefresh())
}

// ShowRefreshView shows the indicator and marks a fetch in flight without
// starting one.
func (m Model) ShowRefreshView() (Model, tea.Cmd) {
	m.refreshing = true
	m.loading = true
	return m, m.spinner.Tick
}

// OnScrolled feeds one scroll step. totalRows includes the footer row.
// Load-more starts when scrolling toward the end near the last row.
func (m Model) OnScrolled(first, last, totalRows int) (Model, tea.Cmd) {
	if m.tracker.OnScrolled(first) != Up {
		return m, nil
	}
	if m.loading || !m.hasMore || m.callbacks.OnLoadMore == nil {
		return m, nil
	}
	if !ShouldLoadMore(first, last, totalRows, m.loadMoreOffset) {
		return m, nil
	}
	m.loading = true
	m.log.Debugf("load more triggered", map[string]any{
		"first": first,
		"last":  last,
		"rows":  totalRows,
	})
	return m, tea.Batch(m.spinner.Tick, m.callbacks.OnLoadMore())
}

// OnScrollStateChanged ends the current scroll gesture.
func (m Model) OnScrollStateChanged() Model {
	m.tracker.OnScrollStateChanged()
	return m
}

// SetComplete clears the in-flight flag and hides the refresh indicator
// after HideDelay.
func (m Model) SetComplete() (Model, tea.Cmd) {
	m.loading = false
	return m, tea.Tick(HideDelay, func(time.Time) tea.Msg {
		return HideRefreshMsg{}
	})
}

// HasMoreItems records whether more pages exist and shows the loading footer
// accordingly.
func (m Model) HasMoreItems(has bool) Model {
	m.hasMore = has
	if m.footer != nil {
		m.footer.SetShowFooter(has)
		m.footer.SetFooterInfo(true, adapter.DefaultFooterText)
	}
	return m
}

// HasLoadedAllItems shows info in the footer without a progress indicator.
func (m Model) HasLoadedAllItems(info string) Model {
	if m.footer != nil {
		m.footer.SetShowFooter(true)
		m.footer.SetFooterInfo(false, info)
	}
	return m
}

// Update handles spinner ticks and the delayed indicator hide.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HideRefreshMsg:
		m.refreshing = false
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Indicator renders the refresh indicator, or an empty string when hidden.
func (m Model) Indicator() string {
	if !m.refreshing {
		return ""
	}
	return m.spinner.View() + " Refreshing..."
}

// FooterText renders the footer row.
func (m Model) FooterText() string {
	if m.footer == nil {
		return ""
	}
	info := m.footer.Info()
	if info.Progress {
		return m.spinner.View() + " " + info.Text
	}
	return info.Text
}
