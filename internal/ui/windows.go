package ui

import (
	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/object"
	"github.com/atomicstack/panoscope/internal/render"
	uistate "github.com/atomicstack/panoscope/internal/ui/state"
	"github.com/atomicstack/panoscope/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPlaceholder = "Find..."
	fieldMaxWidth    = 16
	scrollStep       = 3
)

// pane is the content hosted by one window.
type pane struct {
	id      int
	content render.Content
	list    *uistate.List
	editing bool
}

func newPane(id int, content render.Content) *pane {
	items := make([]uistate.Item, len(content.Lines))
	for i, line := range content.Lines {
		items[i] = uistate.Item{Text: line.Text, Link: line.Link}
	}
	return &pane{id: id, content: content, list: uistate.NewList(items)}
}

// chrome locates the title bar controls of a window, as offsets from its
// left edge. Controls a window does not have are -1.
type chrome struct {
	closeX   int
	nextX    int
	prevX    int
	fieldX   int
	fieldW   int
	titleEnd int
}

func layoutChrome(width int, searchable bool) chrome {
	c := chrome{closeX: width - 2, nextX: -1, prevX: -1, fieldX: -1}
	c.titleEnd = c.closeX - 1
	if !searchable {
		return c
	}
	c.nextX = width - 4
	c.prevX = width - 6
	c.fieldW = min(fieldMaxWidth, max(width/3, 6))
	c.fieldX = c.prevX - 1 - c.fieldW
	if c.fieldX < 2 {
		c.fieldX = 2
		c.fieldW = max(c.prevX-1-c.fieldX, 0)
	}
	c.titleEnd = c.fieldX - 1
	return c
}

// bodyRows is the number of list rows a window can show.
func bodyRows(w *wm.Window) int {
	return max(w.Height-2, 1)
}

// openWindow renders obj into a new focused window.
func (m *Model) openWindow(obj object.Object, searchable bool) *wm.Window {
	content := render.Render(obj)
	title := content.Title
	if title == "" {
		title = "(unnamed)"
	}
	w := m.wm.Create(title, searchable)
	m.panes[w.ID] = newPane(w.ID, content)
	m.stopEditingExcept(w.ID)
	return w
}

func (m *Model) focusedPane() (*wm.Window, *pane) {
	w := m.wm.Top()
	if w == nil {
		return nil, nil
	}
	return w, m.panes[w.ID]
}

func (m *Model) focus(id int) {
	if top := m.wm.Top(); top != nil && top.ID == id {
		return
	}
	m.wm.Focus(id)
	m.stopEditingExcept(id)
}

func (m *Model) closeWindow(id int) {
	if !m.wm.Close(id) {
		return
	}
	delete(m.panes, id)
	m.hideHover()
}

func (m *Model) stopEditingExcept(id int) {
	for pid, p := range m.panes {
		if pid != id {
			p.editing = false
		}
	}
}

// search runs the list search of window id with its current query.
func (m *Model) search(id int, forward bool) bool {
	w := m.wm.Get(id)
	p := m.panes[id]
	if w == nil || p == nil || !w.Searchable {
		return false
	}
	query := p.list.Query
	if query == "" {
		return false
	}
	if p.list.Search(query, forward, bodyRows(w)) {
		events.Search.Match(id, query, forward, p.list.Highlight)
		return true
	}
	events.Search.NoMatch(id, query, forward)
	return false
}

// activateCursor opens the link under the cursor of window id.
func (m *Model) activateCursor(id int) tea.Cmd {
	p := m.panes[id]
	if p == nil {
		return nil
	}
	item, ok := p.list.Current()
	if !ok || item.Link == "" {
		return nil
	}
	return m.open(item.Link, id)
}
