package adapter

// DefaultFooterText labels the footer while more items can be loaded.
const DefaultFooterText = "Load more"

// FooterInfo is what the footer row shows.
type FooterInfo struct {
	Progress bool
	Text     string
}

// Footer appends a synthetic loading row after the data rows of a Source.
// The footer is only present when enabled and the data set is non-empty,
// and it always sits at position DataCount().
type Footer struct {
	source Source
	show   bool
	info   FooterInfo
}

// NewFooter wraps source. The footer starts hidden, showing progress and the
// default text once enabled.
func NewFooter(source Source) *Footer {
	return &Footer{
		source: source,
		info:   FooterInfo{Progress: true, Text: DefaultFooterText},
	}
}

// SetShowFooter enables or disables the footer row.
func (f *Footer) SetShowFooter(show bool) {
	f.show = show
}

// ShowFooter reports whether the footer row is enabled.
func (f *Footer) ShowFooter() bool {
	return f.show
}

// SetFooterInfo sets the footer's progress indicator and text.
func (f *Footer) SetFooterInfo(progress bool, text string) {
	f.info = FooterInfo{Progress: progress, Text: text}
}

// Info returns the footer content.
func (f *Footer) Info() FooterInfo {
	return f.info
}

// DataCount returns the number of data rows.
func (f *Footer) DataCount() int {
	return f.source.ItemCount()
}

// ItemCount returns the number of rows including the footer.
func (f *Footer) ItemCount() int {
	n := f.source.ItemCount()
	if f.show && n > 0 {
		return n + 1
	}
	return n
}

// IsFooter reports whether position is the footer row.
func (f *Footer) IsFooter(position int) bool {
	n := f.source.ItemCount()
	return f.show && n > 0 && position == n
}

// Register forwards to the wrapped source.
func (f *Footer) Register(o Observer) func() {
	return f.source.Register(o)
}

var _ Source = (*Footer)(nil)
