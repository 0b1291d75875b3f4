package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/listkit/internal/feed"
)

// settleDelay is how long after the last scroll key the gesture ends.
const settleDelay = 300 * time.Millisecond

func requestCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// fetchCmd fetches a page asynchronously.
func fetchCmd(ctx context.Context, source feed.Source, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := source.Fetch(ctx, page)
		if err != nil {
			return fetchedMsg{page: page, err: fmt.Errorf("fetch page %d: %w", page, err)}
		}
		return fetchedMsg{page: page, result: result}
	}
}

func settleCmd(seq int) tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return scrollSettledMsg{seq: seq}
	})
}
