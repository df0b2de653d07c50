package events

import "github.com/atomicstack/panoscope/internal/logging"

type HoverTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Hover   = HoverTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (HoverTracer) Show(name string, x, y int) {
	logging.Trace("hover.show", map[string]interface{}{"name": name, "x": x, "y": y})
}

func (HoverTracer) Hide(name string) {
	logging.Trace("hover.hide", map[string]interface{}{"name": name})
}

func (HoverTracer) Stale(name, current string) {
	logging.Trace("hover.stale", map[string]interface{}{"name": name, "current": current})
}

func (ActionTracer) Open(name string, origin int) {
	logging.Trace("action.open", map[string]interface{}{"name": name, "origin": origin})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
