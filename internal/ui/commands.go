package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/panoscope/internal/logging"
	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/object"
	"github.com/atomicstack/panoscope/internal/resolver"
	"github.com/atomicstack/panoscope/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// groupsTitle names the bootstrap window listing every address group.
const groupsTitle = "Address Groups"

// listLoadedMsg carries one bootstrap collection.
type listLoadedMsg struct {
	kind    object.Kind
	objects []object.Object
	err     error
}

type purpose int

const (
	purposeOpen purpose = iota
	purposeHover
)

// resolvedMsg carries the outcome of a lookup started by a click, a key
// press, the open prompt, or a hover.
type resolvedMsg struct {
	purpose purpose
	seq     int
	result  resolver.Result
}

func (m *Model) bootstrapCmd() tea.Cmd {
	return tea.Batch(
		m.listCmd(object.KindAddressGroup),
		m.listCmd(object.KindAddress),
	)
}

func (m *Model) listCmd(kind object.Kind) tea.Cmd {
	res := m.resolver
	return m.bus.Execute(command.Request{
		ID:    "list:" + kind.String(),
		Label: kind.String(),
		Run: func(ctx context.Context) tea.Msg {
			objs, err := res.List(ctx, kind)
			if err != nil {
				logging.Errorf("list %s", err, kind)
			}
			return listLoadedMsg{kind: kind, objects: objs, err: err}
		},
	})
}

func (m *Model) handleListLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(listLoadedMsg)
	if !ok {
		return nil
	}
	events.App.Bootstrap(loaded.kind.String(), len(loaded.objects), loaded.err)
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		events.Action.Error(loaded.err)
		m.openWindow(object.Failure(loaded.err), false)
		return nil
	}
	m.learnNames(object.Names(loaded.objects))
	switch loaded.kind {
	case object.KindAddressGroup:
		m.openWindow(object.Group(groupsTitle, object.Names(loaded.objects)), true)
	default:
		m.openWindow(object.AddressList(loaded.objects), true)
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("loaded %d %s objects", len(loaded.objects), loaded.kind))
	}
	return nil
}

// learnNames records names offered by the open prompt.
func (m *Model) learnNames(names []string) {
	seen := make(map[string]struct{}, len(m.known)+len(names))
	for _, n := range m.known {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := seen[n]; ok || n == "" {
			continue
		}
		seen[n] = struct{}{}
		m.known = append(m.known, n)
	}
}

// knownNames returns every name the prompt can suggest.
func (m *Model) knownNames() []string {
	names := append([]string(nil), m.known...)
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for _, n := range m.session.CachedNames() {
		if _, ok := seen[n]; !ok {
			names = append(names, n)
		}
	}
	return names
}

// resolveCmd fetches name off the UI goroutine. Only the network lookup
// runs there; the result is cached when the message comes back.
func (m *Model) resolveCmd(name string, p purpose, seq int) tea.Cmd {
	res := m.resolver
	return m.bus.Execute(command.Request{
		ID:    "resolve:" + name,
		Label: name,
		Run: func(ctx context.Context) tea.Msg {
			return resolvedMsg{purpose: p, seq: seq, result: res.Fetch(ctx, name)}
		},
	})
}

// open shows name in a new window, resolving it first when it is not cached.
func (m *Model) open(name string, origin int) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	events.Action.Open(name, origin)
	m.errMsg = ""
	if res, ok := m.resolver.Cached(name); ok {
		m.showResult(res)
		return nil
	}
	m.pending[name]++
	return m.resolveCmd(name, purposeOpen, 0)
}

func (m *Model) handleResolvedMsg(msg tea.Msg) tea.Cmd {
	resolved, ok := msg.(resolvedMsg)
	if !ok {
		return nil
	}
	res := resolved.result
	m.resolver.Remember(res)
	switch resolved.purpose {
	case purposeHover:
		m.applyHoverResult(resolved)
	default:
		if n := m.pending[res.Name]; n > 1 {
			m.pending[res.Name] = n - 1
		} else {
			delete(m.pending, res.Name)
		}
		m.showResult(res)
	}
	return nil
}

// showResult opens a window for a resolution outcome. Failures get an Error
// window too, so interactive and bootstrap failures look the same.
func (m *Model) showResult(res resolver.Result) {
	switch res.Status {
	case resolver.StatusFailed:
		m.errMsg = fmt.Sprintf("%s: %v", res.Name, res.Err)
		events.Action.Error(res.Err)
	case resolver.StatusNotFound:
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("%s: %s", res.Name, object.NotFoundMarker))
		}
	default:
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("opened %s (%s)", res.Name, res.Kind))
		}
	}
	m.openWindow(res.Display(), false)
}

// pendingNames lists names with a lookup in flight.
func (m *Model) pendingNames() []string {
	names := make([]string, 0, len(m.pending))
	for name := range m.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
