// Package render paints laid-out items and divider segments onto a grid of
// terminal cells.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// Cell is one terminal cell. A wide glyph occupies its own cell and marks the
// following cell as a continuation.
type Cell struct {
	Glyph        string
	style        int
	continuation bool
}

// Canvas is a fixed-size cell surface. Writes outside it are clipped.
type Canvas struct {
	width  int
	height int
	cells  []Cell
	styles []lipgloss.Style
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i].Glyph = " "
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() divider.Rect {
	return divider.Rect{Right: c.width, Bottom: c.height}
}

// Cell returns the cell at x, y.
func (c *Canvas) Cell(x, y int) (Cell, bool) {
	if !c.inside(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// FillRect paints every cell of r with glyph. A wide glyph is written every
// other cell.
func (c *Canvas) FillRect(r divider.Rect, glyph string, style lipgloss.Style) {
	r = clip(r, c.Bounds())
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	if glyph == "" {
		glyph = " "
	}
	id := c.register(style)
	w := max(runewidth.StringWidth(glyph), 1)
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x+w <= r.Right; x += w {
			c.put(x, y, glyph, w, id)
		}
	}
}

// Text writes s starting at x, y, truncated to maxWidth cells. Escape
// sequences in s are dropped; style comes from style only. It returns the
// number of cells written.
func (c *Canvas) Text(x, y, maxWidth int, s string, style lipgloss.Style) int {
	if y < 0 || y >= c.height || maxWidth <= 0 {
		return 0
	}
	id := c.register(style)
	written := 0
	for _, r := range ansi.Strip(s) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth || x+written+w > c.width {
			break
		}
		if x+written >= 0 {
			c.put(x+written, y, string(r), w, id)
		}
		written += w
	}
	return written
}

// Plain returns the canvas text without styling, one line per row with
// trailing spaces kept.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if !cell.continuation {
				b.WriteString(cell.Glyph)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// String renders the canvas with styles. Adjacent cells painted by the same
// call share one styled run.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range lines {
		var line, run strings.Builder
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == 0 {
				line.WriteString(run.String())
			} else {
				line.WriteString(c.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.continuation {
				continue
			}
			if cell.style != current {
				flush()
				current = cell.style
			}
			run.WriteString(cell.Glyph)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) register(style lipgloss.Style) int {
	c.styles = append(c.styles, style)
	return len(c.styles) - 1
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) put(x, y int, glyph string, width, style int) {
	if !c.inside(x, y) || x+width > c.width {
		return
	}
	row := y * c.width
	// Overwriting half of a wide glyph blanks the other half.
	if cell := c.cells[row+x]; cell.continuation && x > 0 {
		c.cells[row+x-1] = Cell{Glyph: " ", style: c.cells[row+x-1].style}
	}
	if end := x + width; end < c.width && c.cells[row+end].continuation {
		c.cells[row+end] = Cell{Glyph: " ", style: c.cells[row+end].style}
	}
	c.cells[row+x] = Cell{Glyph: glyph, style: style}
	for i := 1; i < width; i++ {
		c.cells[row+x+i] = Cell{style: style, continuation: true}
	}
}

func clip(r, to divider.Rect) divider.Rect {
	return divider.Rect{
		Left:   max(r.Left, to.Left),
		Top:    max(r.Top, to.Top),
		Right:  min(r.Right, to.Right),
		Bottom: min(r.Bottom, to.Bottom),
	}
}
