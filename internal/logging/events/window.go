package events

import "github.com/atomicstack/panoscope/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Create(id int, title string, x, y, z int) {
	logging.Trace("window.create", map[string]interface{}{"id": id, "title": title, "x": x, "y": y, "z": z})
}

func (WindowTracer) Focus(id, z int) {
	logging.Trace("window.focus", map[string]interface{}{"id": id, "z": z})
}

func (WindowTracer) Close(id int) {
	logging.Trace("window.close", map[string]interface{}{"id": id})
}

func (WindowTracer) CascadeReset(x, y int) {
	logging.Trace("window.cascade-reset", map[string]interface{}{"x": x, "y": y})
}

func (WindowTracer) DragStart(id, x, y int) {
	logging.Trace("window.drag.start", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (WindowTracer) DragEnd(id, x, y int) {
	logging.Trace("window.drag.end", map[string]interface{}{"id": id, "x": x, "y": y})
}
