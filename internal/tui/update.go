package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/listkit/internal/pull"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil
	case initLoadMsg:
		var cmd tea.Cmd
		m.pull, cmd = m.pull.InitLoad()
		return m, cmd
	case refreshRequestedMsg:
		return m, fetchCmd(m.ctx, m.source, 0)
	case loadMoreRequestedMsg:
		return m, fetchCmd(m.ctx, m.source, m.page+1)
	case fetchedMsg:
		return m.handleFetched(msg)
	case scrollSettledMsg:
		if msg.seq == m.scrollSeq {
			m.pull = m.pull.OnScrollStateChanged()
		}
		return m, nil
	case ConfigReloadedMsg:
		return m.handleReload(msg)
	case pull.HideRefreshMsg:
		var cmd tea.Cmd
		m.pull, cmd = m.pull.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.pull, cmd = m.pull.Update(msg)
		return m, cmd
	}
}

func (m Model) handleFetched(msg fetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.log.Error(msg.err, "fetch failed")
		var cmd tea.Cmd
		m.pull, cmd = m.pull.SetComplete()
		return m, cmd
	}

	m.err = nil
	m.page = msg.page
	m.items.Refresh(msg.result.Items, msg.page > 0)
	m.pull = m.pull.HasMoreItems(msg.result.HasMore)
	if !msg.result.HasMore && msg.page > 0 {
		m.pull = m.pull.HasLoadedAllItems(NoMoreText)
	}
	m.log.Debugf("page loaded", map[string]any{
		"page":    msg.page,
		"items":   m.items.ItemCount(),
		"hasMore": msg.result.HasMore,
	})
	m.clampScroll()

	var cmd tea.Cmd
	m.pull, cmd = m.pull.SetComplete()
	return m, cmd
}

func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.log.Error(msg.Err, "config reload failed")
		return m, nil
	}
	deco, err := msg.Config.Decoration(m.log)
	if err != nil {
		m.err = err
		m.log.Error(err, "config reload failed")
		return m, nil
	}
	m.err = nil
	m.useConfig(msg.Config, deco)
	m.clampScroll()
	m.log.Info("configuration reloaded")
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		return m.scrollBy(1)
	case "k", "up":
		return m.scrollBy(-1)
	case "pgdown", " ":
		return m.scrollBy(max(m.bodyHeight()-1, 1))
	case "pgup":
		return m.scrollBy(-max(m.bodyHeight()-1, 1))
	case "r":
		var cmd tea.Cmd
		m.pull, cmd = m.pull.Refresh()
		if cmd != nil {
			m.scroll = 0
		}
		return m, cmd
	case "g":
		m.toggled = !m.toggled
		m.deco.Invalidate()
		m.clampScroll()
		return m, nil
	}
	return m, nil
}

// scrollBy moves the list by delta cells. Each key press is one scroll step
// of a gesture that ends settleDelay after the last press.
func (m Model) scrollBy(delta int) (tea.Model, tea.Cmd) {
	f := m.frame()
	before, _, err := f.layout(m.viewport())
	if err != nil {
		m.err = err
		return m, nil
	}
	if m.pull.Direction() == pull.None {
		m.pull, _ = m.pull.OnScrolled(before.FirstVisible, before.LastVisible, m.footer.ItemCount())
	}

	vp := m.viewport()
	vp.Scroll += delta
	after, vp, err := f.layout(vp)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.scroll = vp.Scroll

	var loadCmd tea.Cmd
	m.pull, loadCmd = m.pull.OnScrolled(after.FirstVisible, after.LastVisible, m.footer.ItemCount())
	m.scrollSeq++
	return m, tea.Batch(loadCmd, settleCmd(m.scrollSeq))
}

func (m *Model) clampScroll() {
	_, vp, err := m.frame().layout(m.viewport())
	if err != nil {
		return
	}
	m.scroll = vp.Scroll
}
