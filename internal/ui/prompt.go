package ui

import (
	"strings"

	uistate "github.com/atomicstack/panoscope/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptLabel      = "open: "
	maxSuggestions   = 5
	promptCharLimit  = 128
	promptInputWidth = 32
)

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "object name"
	ti.CharLimit = promptCharLimit
	ti.Width = promptInputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FieldFocused != nil {
		ti.TextStyle = *styles.FieldFocused
	}
	if styles.FieldPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FieldPlaceholder
	}
	return ti
}

func (m *Model) startPrompt() tea.Cmd {
	m.prompting = true
	m.errMsg = ""
	m.forceClearInfo()
	m.prompt.Reset()
	return m.prompt.Focus()
}

func (m *Model) stopPrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

func (m *Model) handlePromptKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.stopPrompt()
		return nil
	case "enter":
		name := strings.TrimSpace(m.prompt.Value())
		m.stopPrompt()
		return m.open(name, 0)
	case "tab":
		if best := uistate.BestMatch(m.knownNames(), m.prompt.Value()); best != "" {
			m.prompt.SetValue(best)
			m.prompt.CursorEnd()
		}
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(key)
	return cmd
}

// suggestions lists names matching the prompt's current value.
func (m *Model) suggestions() []string {
	if !m.prompting {
		return nil
	}
	return uistate.Suggest(m.knownNames(), m.prompt.Value(), maxSuggestions)
}
