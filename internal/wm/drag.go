package wm

import "github.com/atomicstack/panoscope/internal/logging/events"

// BeginDrag starts dragging the window from the pointer at (px, py) and
// raises it. Each window tracks its own grab point.
func (m *Manager) BeginDrag(id, px, py int) bool {
	w := m.Get(id)
	if w == nil {
		return false
	}
	m.Focus(id)
	w.drag = &dragState{grabX: px - w.X, grabY: py - w.Y}
	events.Window.DragStart(w.ID, w.X, w.Y)
	return true
}

// DragTo moves every window that is mid-drag so its grab point follows the
// pointer.
func (m *Manager) DragTo(px, py int) bool {
	moved := false
	for _, w := range m.windows {
		if w.drag == nil {
			continue
		}
		x := px - w.drag.grabX
		y := py - w.drag.grabY
		if x == w.X && y == w.Y {
			continue
		}
		w.X, w.Y = x, y
		m.clamp(w)
		moved = true
	}
	return moved
}

// EndDrag releases every drag in progress.
func (m *Manager) EndDrag() {
	for _, w := range m.windows {
		if w.drag == nil {
			continue
		}
		w.drag = nil
		events.Window.DragEnd(w.ID, w.X, w.Y)
	}
}

// Dragging reports whether any window is mid-drag.
func (m *Manager) Dragging() bool {
	for _, w := range m.windows {
		if w.drag != nil {
			return true
		}
	}
	return false
}

// MoveBy shifts a window by (dx, dy) cells.
func (m *Manager) MoveBy(id, dx, dy int) bool {
	w := m.Get(id)
	if w == nil {
		return false
	}
	w.X += dx
	w.Y += dy
	m.clamp(w)
	return true
}

// clamp keeps at least a sliver of the title bar on screen so the window
// can always be grabbed again.
func (m *Manager) clamp(w *Window) {
	if w.Y < 0 {
		w.Y = 0
	}
	if m.viewH > 0 && w.Y > m.viewH-1 {
		w.Y = m.viewH - 1
	}
	if w.X < 2-w.Width {
		w.X = 2 - w.Width
	}
	if m.viewW > 0 && w.X > m.viewW-2 {
		w.X = m.viewW - 2
	}
}
