package tui

import (
	"github.com/alexisbeaulieu97/listkit/internal/config"
	"github.com/alexisbeaulieu97/listkit/internal/feed"
)

// ConfigReloadedMsg carries a configuration re-read from disk. The feed
// keeps its source; layout, decoration and pull settings are replaced.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

type initLoadMsg struct{}

// refreshRequestedMsg and loadMoreRequestedMsg are emitted by the pull
// controller callbacks; the model answers them with a fetch.
type refreshRequestedMsg struct{}

type loadMoreRequestedMsg struct{}

// fetchedMsg reports the outcome of a page fetch.
type fetchedMsg struct {
	page   int
	result feed.Page
	err    error
}

// scrollSettledMsg ends a scroll gesture unless a newer scroll step arrived.
type scrollSettledMsg struct {
	seq int
}
