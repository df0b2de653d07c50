package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/panoscope/internal/resolver"
	"github.com/atomicstack/panoscope/internal/session"
	"github.com/atomicstack/panoscope/internal/theme"
	"github.com/atomicstack/panoscope/internal/ui/command"
	"github.com/atomicstack/panoscope/internal/wm"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Source     resolver.Source
	Context    context.Context
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Layout overrides wm.DefaultLayout when its Width is non-zero.
	Layout wm.Layout
}

// Model implements the Bubble Tea model for the object browser.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	pending     map[string]int

	session  *session.State
	resolver *resolver.Resolver
	wm       *wm.Manager
	panes    map[int]*pane
	hover    hoverState
	known    []string

	prompt    textinput.Model
	prompting bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel wires the session, resolver and window manager together.
func NewModel(opts Options) *Model {
	layout := opts.Layout
	if layout.Width == 0 {
		layout = wm.DefaultLayout()
	}
	sess := session.New(layout.Origin())
	m := &Model{
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		pending:    map[string]int{},
		session:    sess,
		resolver:   resolver.New(opts.Source, sess),
		wm:         wm.New(sess, layout),
		panes:      map[int]*pane{},
		prompt:     newPrompt(),
		bus:        command.New(opts.Context),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init starts the two bootstrap fetches.
func (m *Model) Init() tea.Cmd {
	return m.bootstrapCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(listLoadedMsg{}):     m.handleListLoadedMsg,
		reflect.TypeOf(resolvedMsg{}):       m.handleResolvedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// syncViewport hands the desktop area to the window manager.
func (m *Model) syncViewport() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.wm.SetViewport(m.viewWidth(), m.desktopHeight())
	for _, w := range m.wm.Stacked() {
		if p := m.panes[w.ID]; p != nil {
			p.list.EnsureCursorVisible(bodyRows(w))
		}
	}
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// desktopHeight is the area windows live in: everything above the footer
// and status bar.
func (m *Model) desktopHeight() int {
	h := m.viewHeight() - 1
	if m.showFooter {
		h--
	}
	return max(h, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
