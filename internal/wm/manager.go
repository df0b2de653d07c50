// Package wm manages floating windows: cascading placement, stacking order,
// focus, dragging and closing. It knows geometry only; content belongs to
// the caller, keyed by window ID.
package wm

import (
	"sort"

	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/session"
)

// Layout fixes window size and the cascade used to place new windows.
type Layout struct {
	OriginX int
	OriginY int
	StepX   int
	StepY   int
	Width   int
	Height  int
	// Margin is the minimum gap kept between a cascaded window and the
	// viewport edge before the cascade resets to the origin.
	Margin int
}

// DefaultLayout returns the cell-based layout used by the terminal UI.
func DefaultLayout() Layout {
	return Layout{
		OriginX: 2,
		OriginY: 1,
		StepX:   4,
		StepY:   2,
		Width:   56,
		Height:  16,
		Margin:  2,
	}
}

// Origin returns the first cascade position.
func (l Layout) Origin() session.Point {
	return session.Point{X: l.OriginX, Y: l.OriginY}
}

// Window is a floating panel.
type Window struct {
	ID         int
	Title      string
	X          int
	Y          int
	Width      int
	Height     int
	Z          int
	Searchable bool

	drag *dragState
}

type dragState struct {
	grabX int
	grabY int
}

// Contains reports whether the cell (x, y) lies inside the window.
func (w *Window) Contains(x, y int) bool {
	return x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height
}

// Dragging reports whether the window is mid-drag.
func (w *Window) Dragging() bool {
	return w.drag != nil
}

// Manager owns the set of open windows.
type Manager struct {
	session *session.State
	layout  Layout
	windows []*Window
	nextID  int
	viewW   int
	viewH   int
}

// New returns a Manager that draws stacking values and cascade positions
// from sess.
func New(sess *session.State, layout Layout) *Manager {
	return &Manager{session: sess, layout: layout}
}

// Layout returns the manager's layout.
func (m *Manager) Layout() Layout {
	return m.layout
}

// SetViewport records the usable screen area. Zero values mean unknown, in
// which case the cascade never resets and nothing is clamped.
func (m *Manager) SetViewport(width, height int) {
	m.viewW = width
	m.viewH = height
	for _, w := range m.windows {
		m.clamp(w)
	}
}

// Create opens a window at the current cascade position, advances the
// cascade, and focuses the new window.
func (m *Manager) Create(title string, searchable bool) *Window {
	m.nextID++
	pos := m.session.Cascade()
	w := &Window{
		ID:         m.nextID,
		Title:      title,
		X:          pos.X,
		Y:          pos.Y,
		Width:      m.layout.Width,
		Height:     m.layout.Height,
		Searchable: searchable,
	}
	if m.viewW > 0 && w.Width > m.viewW {
		w.Width = m.viewW
	}
	if m.viewH > 0 && w.Height > m.viewH {
		w.Height = m.viewH
	}
	m.windows = append(m.windows, w)
	m.advanceCascade(pos)
	w.Z = m.session.NextZ()
	events.Window.Create(w.ID, w.Title, w.X, w.Y, w.Z)
	return w
}

func (m *Manager) advanceCascade(pos session.Point) {
	next := session.Point{X: pos.X + m.layout.StepX, Y: pos.Y + m.layout.StepY}
	if m.viewW > 0 && m.viewH > 0 {
		maxX := m.viewW - (m.layout.Width + m.layout.Margin)
		maxY := m.viewH - (m.layout.Height + m.layout.Margin)
		if next.X > maxX || next.Y > maxY {
			next = m.layout.Origin()
			events.Window.CascadeReset(next.X, next.Y)
		}
	}
	m.session.SetCascade(next)
}

// Get returns the window with id, or nil once closed.
func (m *Manager) Get(id int) *Window {
	for _, w := range m.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Len returns the number of open windows.
func (m *Manager) Len() int {
	return len(m.windows)
}

// Focus raises the window above every other.
func (m *Manager) Focus(id int) bool {
	w := m.Get(id)
	if w == nil {
		return false
	}
	w.Z = m.session.NextZ()
	events.Window.Focus(w.ID, w.Z)
	return true
}

// Top returns the focused (highest stacked) window.
func (m *Manager) Top() *Window {
	var top *Window
	for _, w := range m.windows {
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

// Stacked returns open windows ordered bottom to top.
func (m *Manager) Stacked() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// WindowAt returns the topmost window covering (x, y).
func (m *Manager) WindowAt(x, y int) *Window {
	var hit *Window
	for _, w := range m.windows {
		if !w.Contains(x, y) {
			continue
		}
		if hit == nil || w.Z > hit.Z {
			hit = w
		}
	}
	return hit
}

// Close removes the window and any drag in progress on it.
func (m *Manager) Close(id int) bool {
	for i, w := range m.windows {
		if w.ID != id {
			continue
		}
		w.drag = nil
		m.windows = append(m.windows[:i], m.windows[i+1:]...)
		events.Window.Close(id)
		return true
	}
	return false
}

// Cycle focuses the next (or previous) window in creation order relative to
// the focused one.
func (m *Manager) Cycle(forward bool) *Window {
	n := len(m.windows)
	if n == 0 {
		return nil
	}
	top := m.Top()
	idx := 0
	for i, w := range m.windows {
		if w == top {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	next := m.windows[idx]
	m.Focus(next.ID)
	return next
}
