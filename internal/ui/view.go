package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/panoscope/internal/ui/canvas"
	"github.com/atomicstack/panoscope/internal/wm"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const footerText = "tab focus  ↑/↓ move  enter open  p preview  / find  n/N next/prev  o open  x close  drag title to move  q quit"

// View implements tea.Model. Windows are painted bottom to top so the
// stacking order decides what shows where they overlap; the hover bubble is
// painted last.
func (m *Model) View() string {
	width := m.viewWidth()
	c := canvas.New(width, m.desktopHeight())
	top := m.wm.Top()
	for _, w := range m.wm.Stacked() {
		m.drawWindow(c, w, m.panes[w.ID], w == top)
	}
	m.drawBubble(c)
	lines := c.Lines()
	if m.showFooter {
		lines = append(lines, fitLine(footerText, width, styles.Footer))
	}
	lines = append(lines, m.statusLine(width))
	return strings.Join(lines, "\n")
}

func (m *Model) drawWindow(c *canvas.Canvas, w *wm.Window, p *pane, focused bool) {
	frame, title := styles.Frame, styles.Title
	if focused {
		frame, title = styles.FrameFocused, styles.TitleFocused
	}
	ch := layoutChrome(w.Width, w.Searchable)
	c.Fill(w.X, w.Y, w.Width, 1, ' ', title)
	if avail := ch.titleEnd - 1; avail > 0 {
		c.Text(w.X+1, w.Y, fit(w.Title, avail), title)
	}
	if w.Searchable && p != nil {
		drawField(c, w.X+ch.fieldX, w.Y, ch.fieldW, p)
		c.Set(w.X+ch.prevX, w.Y, '◀', styles.Button)
		c.Set(w.X+ch.nextX, w.Y, '▶', styles.Button)
	}
	c.Set(w.X+ch.closeX, w.Y, '✖', styles.Button)

	inner := w.Height - 2
	if inner <= 0 || w.Width < 4 {
		return
	}
	for r := 0; r < inner; r++ {
		y := w.Y + 1 + r
		c.Set(w.X, y, '│', frame)
		c.Fill(w.X+1, y, w.Width-2, 1, ' ', styles.Body)
		c.Set(w.X+w.Width-1, y, '│', frame)
	}
	bottom := w.Y + w.Height - 1
	c.Set(w.X, bottom, '└', frame)
	c.Fill(w.X+1, bottom, w.Width-2, 1, '─', frame)
	c.Set(w.X+w.Width-1, bottom, '┘', frame)
	if p == nil {
		return
	}
	m.drawItems(c, w, p, inner, focused)
	if n := len(p.list.Items); n > inner {
		start, end := p.list.Visible(inner)
		label := fmt.Sprintf(" %d-%d/%d ", start+1, end, n)
		if x := w.X + w.Width - 2 - ansi.StringWidth(label); x > w.X {
			c.Text(x, bottom, label, frame)
		}
	}
}

func (m *Model) drawItems(c *canvas.Canvas, w *wm.Window, p *pane, inner int, focused bool) {
	right := w.X + w.Width - 2
	if len(p.list.Items) == 0 {
		if p.content.Bullet {
			c.Text(w.X+2, w.Y+1, fit("(empty)", right-w.X-2), styles.Bullet)
		}
		return
	}
	start, end := p.list.Visible(inner)
	for i := start; i < end; i++ {
		item := p.list.Items[i]
		y := w.Y + 1 + i - start
		x := w.X + 2
		if p.content.Bullet {
			c.Set(x, y, '•', styles.Bullet)
			x += 2
		}
		style := styles.Body
		if item.Link != "" {
			style = styles.Link
		}
		switch {
		case i == p.list.Highlight:
			style = styles.Highlight
		case focused && p.content.Bullet && i == p.list.Cursor:
			style = styles.Cursor
		}
		if avail := right - x; avail > 0 {
			c.Text(x, y, fit(item.Text, avail), style)
		}
	}
}

// drawField paints a window's search box, scrolled so the caret is visible.
func drawField(c *canvas.Canvas, x, y, width int, p *pane) {
	if width <= 0 {
		return
	}
	style := styles.Field
	if p.editing {
		style = styles.FieldFocused
	}
	c.Fill(x, y, width, 1, ' ', style)
	query := p.list.Query
	if query == "" && !p.editing {
		c.Text(x, y, truncate.String(fieldPlaceholder, uint(width)), styles.FieldPlaceholder)
		return
	}
	runes := []rune(query)
	pos := p.list.QueryCursorPos()
	start := 0
	if pos >= width {
		start = pos - width + 1
	}
	col := x
	for i := start; i < len(runes) && col < x+width; i++ {
		st := style
		if p.editing && i == pos {
			st = styles.Cursor
		}
		col += c.Set(col, y, runes[i], st)
	}
	if p.editing && pos == len(runes) && col < x+width {
		c.Set(col, y, ' ', styles.Cursor)
	}
}

func (m *Model) drawBubble(c *canvas.Canvas) {
	if !m.hover.visible || len(m.hover.lines) == 0 {
		return
	}
	width := 0
	for _, line := range m.hover.lines {
		width = max(width, ansi.StringWidth(line))
	}
	width = min(width, bubbleMaxWidth) + 2
	height := len(m.hover.lines)
	x, y := m.hover.x+1, m.hover.y+1
	if x+width > c.Width() {
		x = max(c.Width()-width, 0)
	}
	if y+height > c.Height() {
		y = max(m.hover.y-height, 0)
	}
	for i, line := range m.hover.lines {
		style := styles.Bubble
		switch {
		case i == 0:
			style = styles.BubbleTitle
		case m.hover.failed && i == len(m.hover.lines)-1:
			style = styles.BubbleError
		}
		c.Fill(x, y+i, width, 1, ' ', style)
		c.Text(x+1, y+i, fit(line, width-2), style)
	}
}

func (m *Model) statusLine(width int) string {
	right := fmt.Sprintf(" %d windows  %d cached ", m.wm.Len(), m.session.CacheLen())
	if m.prompting {
		left := styles.PromptLabel.Render(promptLabel) + m.prompt.View()
		if s := m.suggestions(); len(s) > 0 {
			left += "  " + styles.Suggestion.Render(strings.Join(s, "  "))
		}
		return composeBar(left, right, width, styles.Status)
	}
	switch {
	case m.errMsg != "":
		return composeBar(styles.StatusError.Render("Error: "+m.errMsg), right, width, styles.Status)
	case len(m.pending) > 0:
		text := "resolving " + strings.Join(m.pendingNames(), ", ") + "…"
		return composeBar(styles.StatusPending.Render(text), right, width, styles.Status)
	default:
		return composeBar(styles.Status.Render(m.currentInfo()), right, width, styles.Status)
	}
}

// composeBar lays out an already styled left part and a right part across
// width columns, truncating the left part first.
func composeBar(left, right string, width int, fill *lipgloss.Style) string {
	rightW := ansi.StringWidth(right)
	if rightW >= width {
		right, rightW = "", 0
	}
	avail := width - rightW
	left = fit(left, max(avail, 1))
	gap := max(avail-ansi.StringWidth(left), 0)
	return left + fill.Render(strings.Repeat(" ", gap)) + fill.Render(right)
}

func fitLine(text string, width int, style *lipgloss.Style) string {
	text = fit(text, max(width, 1))
	return style.Render(text + strings.Repeat(" ", max(width-ansi.StringWidth(text), 0)))
}

// fit shortens s to avail cells with a trailing ellipsis. Strings that
// already fit are returned untouched, since the tail always takes a cell.
func fit(s string, avail int) string {
	if avail <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= avail {
		return s
	}
	return truncate.StringWithTail(s, uint(avail), "…")
}
