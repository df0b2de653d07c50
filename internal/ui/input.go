package ui

import (
	"unicode"

	"github.com/atomicstack/panoscope/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.prompting {
		return m.handlePromptKey(key)
	}
	if w, p := m.focusedPane(); w != nil && p != nil && p.editing {
		if handled, cmd := m.handleFieldKey(w.ID, p, key); handled {
			return cmd
		}
	}
	return m.handleGlobalKey(key)
}

func (m *Model) handleGlobalKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q":
		return tea.Quit
	case "esc":
		m.hideHover()
		m.errMsg = ""
		return nil
	case "o", ":":
		m.hideHover()
		return m.startPrompt()
	case "tab":
		m.hideHover()
		m.cycle(true)
		return nil
	case "shift+tab":
		m.hideHover()
		m.cycle(false)
		return nil
	}
	w, p := m.focusedPane()
	if w == nil || p == nil {
		return nil
	}
	rows := bodyRows(w)
	switch key.String() {
	case "up", "k":
		m.moveCursor(p, rows, p.list.MoveCursorUp)
	case "down", "j":
		m.moveCursor(p, rows, p.list.MoveCursorDown)
	case "pgup":
		m.moveCursor(p, rows, func() bool { return p.list.MoveCursorPageUp(rows) })
	case "pgdown":
		m.moveCursor(p, rows, func() bool { return p.list.MoveCursorPageDown(rows) })
	case "home", "g":
		m.moveCursor(p, rows, p.list.MoveCursorHome)
	case "end", "G":
		m.moveCursor(p, rows, p.list.MoveCursorEnd)
	case "enter":
		m.hideHover()
		return m.activateCursor(w.ID)
	case "p", " ":
		return m.previewCursor()
	case "/":
		if w.Searchable {
			m.hideHover()
			p.editing = true
			p.list.MoveQueryCursorEnd()
		}
	case "n":
		m.search(w.ID, true)
	case "N":
		m.search(w.ID, false)
	case "x":
		m.closeWindow(w.ID)
	case "shift+up":
		m.wm.MoveBy(w.ID, 0, -1)
	case "shift+down":
		m.wm.MoveBy(w.ID, 0, 1)
	case "shift+left":
		m.wm.MoveBy(w.ID, -2, 0)
	case "shift+right":
		m.wm.MoveBy(w.ID, 2, 0)
	}
	return nil
}

func (m *Model) moveCursor(p *pane, rows int, move func() bool) {
	if move() {
		m.hideHover()
		p.list.EnsureCursorVisible(rows)
	}
}

func (m *Model) cycle(forward bool) {
	if w := m.wm.Cycle(forward); w != nil {
		m.stopEditingExcept(w.ID)
	}
}

// handleFieldKey edits the search field of the focused window.
func (m *Model) handleFieldKey(id int, p *pane, key tea.KeyMsg) (bool, tea.Cmd) {
	l := p.list
	switch key.String() {
	case "esc", "tab", "shift+tab":
		p.editing = false
		return key.String() == "esc", nil
	case "enter", "ctrl+n":
		m.search(id, true)
		return true, nil
	case "ctrl+p":
		m.search(id, false)
		return true, nil
	case "ctrl+a":
		l.MoveQueryCursorStart()
		return true, nil
	case "ctrl+e":
		l.MoveQueryCursorEnd()
		return true, nil
	case "ctrl+w":
		if l.DeleteQueryWordBackward() {
			events.Search.Edit(id, l.Query)
		}
		return true, nil
	case "ctrl+u":
		if l.DeleteQueryToStart() {
			events.Search.Edit(id, l.Query)
		}
		return true, nil
	case "alt+b":
		l.MoveQueryCursorWordBackward()
		return true, nil
	case "alt+f":
		l.MoveQueryCursorWordForward()
		return true, nil
	}
	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if l.DeleteQueryRuneBackward() {
			events.Search.Edit(id, l.Query)
		}
		return true, nil
	case tea.KeyLeft:
		l.MoveQueryCursorRuneBackward()
		return true, nil
	case tea.KeyRight:
		l.MoveQueryCursorRuneForward()
		return true, nil
	case tea.KeySpace:
		l.InsertQueryText(" ")
		events.Search.Edit(id, l.Query)
		return true, nil
	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return false, nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		l.InsertQueryText(string(key.Runes))
		events.Search.Edit(id, l.Query)
		return true, nil
	}
	return false, nil
}
