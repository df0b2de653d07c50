package ui

import (
	"github.com/atomicstack/panoscope/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonLeft:
			return m.handlePress(ev.X, ev.Y)
		case tea.MouseButtonWheelUp:
			m.scrollAt(ev.X, ev.Y, -scrollStep)
		case tea.MouseButtonWheelDown:
			m.scrollAt(ev.X, ev.Y, scrollStep)
		}
	case tea.MouseActionRelease:
		m.wm.EndDrag()
	case tea.MouseActionMotion:
		if m.wm.Dragging() {
			m.wm.DragTo(ev.X, ev.Y)
			return nil
		}
		return m.hoverAt(ev.X, ev.Y)
	}
	return nil
}

// handlePress routes a left click to the control under it.
func (m *Model) handlePress(x, y int) tea.Cmd {
	w := m.wm.WindowAt(x, y)
	if w == nil {
		m.stopEditingExcept(0)
		return nil
	}
	p := m.panes[w.ID]
	relX := x - w.X
	if y == w.Y {
		return m.pressTitleBar(w, p, relX, x, y)
	}
	m.focus(w.ID)
	if p == nil {
		return nil
	}
	p.editing = false
	idx := m.rowAt(w, x, y)
	if idx < 0 {
		return nil
	}
	p.list.SetCursor(idx)
	if link := p.list.Items[idx].Link; link != "" {
		m.hideHover()
		return m.open(link, w.ID)
	}
	return nil
}

func (m *Model) pressTitleBar(w *wm.Window, p *pane, relX, x, y int) tea.Cmd {
	c := layoutChrome(w.Width, w.Searchable)
	switch {
	case relX == c.closeX:
		m.closeWindow(w.ID)
		return nil
	case w.Searchable && relX == c.nextX:
		m.focus(w.ID)
		m.search(w.ID, true)
		return nil
	case w.Searchable && relX == c.prevX:
		m.focus(w.ID)
		m.search(w.ID, false)
		return nil
	case w.Searchable && p != nil && relX >= c.fieldX && relX < c.fieldX+c.fieldW:
		m.focus(w.ID)
		p.editing = true
		p.list.MoveQueryCursorEnd()
		return nil
	}
	if p != nil {
		p.editing = false
	}
	m.hideHover()
	m.wm.BeginDrag(w.ID, x, y)
	m.stopEditingExcept(w.ID)
	return nil
}

func (m *Model) scrollAt(x, y, delta int) {
	w := m.wm.WindowAt(x, y)
	if w == nil {
		return
	}
	if p := m.panes[w.ID]; p != nil {
		if p.list.Scroll(delta, bodyRows(w)) {
			m.hideHover()
		}
	}
}
