package pull

// HideRefreshMsg hides the refresh indicator once a load has completed.
type HideRefreshMsg struct{}
