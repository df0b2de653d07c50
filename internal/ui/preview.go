package ui

import (
	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/render"
	"github.com/atomicstack/panoscope/internal/resolver"
	"github.com/atomicstack/panoscope/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	bubbleMaxWidth = 48
	bubbleLoading  = "Loading…"
)

// hoverState is the single shared preview bubble.
type hoverState struct {
	visible bool
	// pinned bubbles come from the keyboard and ignore pointer motion.
	pinned  bool
	name    string
	x       int
	y       int
	lines   []string
	failed  bool
	loading bool
	seq     int
}

// showHover points the bubble at name, anchored at (x, y). Cached objects
// render at once; otherwise a lookup is started and the bubble shows a
// placeholder until it returns.
func (m *Model) showHover(name string, x, y int, pinned bool) tea.Cmd {
	seq := m.hover.seq + 1
	m.hover = hoverState{visible: true, pinned: pinned, name: name, x: x, y: y, seq: seq}
	m.session.SetLastHovered(name)
	events.Hover.Show(name, x, y)
	if res, ok := m.resolver.Cached(name); ok {
		m.hover.lines = render.Preview(res.Display())
		return nil
	}
	m.hover.loading = true
	m.hover.lines = []string{name, "", bubbleLoading}
	return m.resolveCmd(name, purposeHover, seq)
}

func (m *Model) hideHover() {
	if !m.hover.visible {
		return
	}
	events.Hover.Hide(m.hover.name)
	m.hover.visible = false
	m.hover.pinned = false
	m.session.SetLastHovered("")
}

// applyHoverResult fills the bubble unless the pointer has moved on.
func (m *Model) applyHoverResult(msg resolvedMsg) {
	res := msg.result
	if !m.hover.visible || msg.seq != m.hover.seq || m.session.LastHovered() != res.Name {
		events.Hover.Stale(res.Name, m.session.LastHovered())
		return
	}
	m.hover.loading = false
	m.hover.lines = render.Preview(res.Display())
	m.hover.failed = res.Status == resolver.StatusFailed
	if m.hover.failed {
		m.hover.lines[0] = res.Name
		m.errMsg = res.Name + ": " + res.Err.Error()
	}
}

// hoverAt updates the bubble for pointer motion to (x, y).
func (m *Model) hoverAt(x, y int) tea.Cmd {
	name, ok := m.linkAt(x, y)
	if !ok {
		if !m.hover.pinned {
			m.hideHover()
		}
		return nil
	}
	if m.hover.visible && m.hover.name == name && !m.hover.pinned {
		return nil
	}
	return m.showHover(name, x, y, false)
}

// previewCursor toggles a pinned bubble for the focused window's cursor.
func (m *Model) previewCursor() tea.Cmd {
	w, p := m.focusedPane()
	if w == nil || p == nil {
		return nil
	}
	item, ok := p.list.Current()
	if !ok || item.Link == "" {
		return nil
	}
	if m.hover.visible && m.hover.pinned && m.hover.name == item.Link {
		m.hideHover()
		return nil
	}
	x, y := cursorAnchor(w, p)
	return m.showHover(item.Link, x, y, true)
}

func cursorAnchor(w *wm.Window, p *pane) (int, int) {
	return w.X + 3, w.Y + 1 + p.list.Cursor - p.list.ViewportOffset
}

// rowAt maps a screen cell to the list index shown there, or -1.
func (m *Model) rowAt(w *wm.Window, x, y int) int {
	p := m.panes[w.ID]
	if p == nil {
		return -1
	}
	relY := y - w.Y
	if relY < 1 || relY > w.Height-2 {
		return -1
	}
	if x <= w.X || x >= w.X+w.Width-1 {
		return -1
	}
	idx := p.list.ViewportOffset + relY - 1
	if idx < 0 || idx >= len(p.list.Items) {
		return -1
	}
	return idx
}

// linkAt returns the link under (x, y) on the topmost window there.
func (m *Model) linkAt(x, y int) (string, bool) {
	w := m.wm.WindowAt(x, y)
	if w == nil {
		return "", false
	}
	idx := m.rowAt(w, x, y)
	if idx < 0 {
		return "", false
	}
	link := m.panes[w.ID].list.Items[idx].Link
	return link, link != ""
}
