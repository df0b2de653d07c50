// Package canvas is a cell grid for compositing overlapping windows. Later
// draws overwrite earlier ones, so painting windows bottom to top yields the
// stacking order on screen.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style *lipgloss.Style
	// cont marks the right half of a double-width rune.
	cont bool
}

// Canvas is a fixed-size grid of styled cells.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Set writes one rune. Double-width runes take two cells and are dropped
// when the second cell falls off the right edge.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !c.inside(x, y) {
		return w
	}
	if w == 2 && x+1 >= c.width {
		c.put(x, y, cell{r: ' ', style: style})
		return w
	}
	c.put(x, y, cell{r: r, style: style})
	if w == 2 {
		c.put(x+1, y, cell{r: ' ', style: style, cont: true})
	}
	return w
}

// put replaces a cell, blanking whichever half of a wide rune it splits.
func (c *Canvas) put(x, y int, v cell) {
	row := c.cells[y]
	if row[x].cont && x > 0 && !v.cont {
		row[x-1] = cell{r: ' ', style: row[x-1].style}
	}
	if x+1 < c.width && row[x+1].cont {
		row[x+1] = cell{r: ' ', style: row[x+1].style}
	}
	row[x] = v
}

// Text writes s starting at (x, y) without wrapping and returns the number
// of columns it occupies. Cells outside the canvas are clipped.
func (c *Canvas) Text(x, y int, s string, style *lipgloss.Style) int {
	col := x
	for _, r := range s {
		if r == '\n' || r == '\t' || r < 0x20 {
			r = ' '
		}
		col += c.Set(col, y, r, style)
		if col >= c.width {
			break
		}
	}
	return col - x
}

// Fill paints a rectangle with r.
func (c *Canvas) Fill(x, y, width, height int, r rune, style *lipgloss.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			c.Set(col, row, r, style)
		}
	}
}

// Lines returns each row rendered with its styles.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var current *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(current.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// String renders the whole canvas.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Plain returns the rows without styling, trailing spaces trimmed.
func (c *Canvas) Plain() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.cont {
				b.WriteRune(cl.r)
			}
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}
