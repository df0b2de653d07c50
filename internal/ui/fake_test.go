package ui

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/atomicstack/panoscope/internal/logging"
	"github.com/atomicstack/panoscope/internal/object"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeSource struct {
	addresses map[string]object.Object
	groups    map[string]object.Object
	findErr   map[string]error
	listErr   map[object.Kind]error
	finds     map[object.Kind]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		addresses: map[string]object.Object{
			"web":  {Name: "web", IPNetmask: "10.0.0.1/32"},
			"db":   {Name: "db", IPNetmask: "10.0.0.2/32"},
			"site": {Name: "site", FQDN: "example.com"},
		},
		groups: map[string]object.Object{
			"dmz":  object.Group("dmz", []string{"web", "db", "ghost"}),
			"core": object.Group("core", []string{"dmz", "site"}),
		},
		findErr: map[string]error{},
		listErr: map[object.Kind]error{},
		finds:   map[object.Kind]int{},
	}
}

func (f *fakeSource) collection(kind object.Kind) map[string]object.Object {
	if kind == object.KindAddressGroup {
		return f.groups
	}
	return f.addresses
}

func (f *fakeSource) Find(_ context.Context, kind object.Kind, name string) ([]object.Object, error) {
	f.finds[kind]++
	if err := f.findErr[name]; err != nil {
		return nil, err
	}
	if obj, ok := f.collection(kind)[name]; ok {
		return []object.Object{obj}, nil
	}
	return nil, nil
}

func (f *fakeSource) List(_ context.Context, kind object.Kind) ([]object.Object, error) {
	if err := f.listErr[kind]; err != nil {
		return nil, err
	}
	src := f.collection(kind)
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]object.Object, len(names))
	for i, name := range names {
		out[i] = src[name]
	}
	return out, nil
}

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
}

// startedHarness returns a 120x40 model that has run its bootstrap fetches.
// The address groups window is id 1, the addresses window id 2.
func startedHarness(t *testing.T, src *fakeSource) *Harness {
	t.Helper()
	quietLogs(t)
	h := NewHarness(NewModel(Options{Source: src, Width: 120, Height: 40}))
	h.Start()
	if got := h.Model().wm.Len(); got != 2 {
		t.Fatalf("expected two bootstrap windows, got %d", got)
	}
	return h
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Harness, text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func wheel(x, y int, down bool) tea.MouseMsg {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

func paneTexts(p *pane) []string {
	return p.list.Texts()
}
