package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/panoscope/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one asynchronous piece of work, typically a REST
// lookup, whose result re-enters the program as a message.
type Request struct {
	ID    string
	Label string
	Run   func(ctx context.Context) tea.Msg
}

// Bus runs requests off the UI goroutine under a shared context.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus instance. A nil ctx means Background.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Run(b.ctx)
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
