package events

import "github.com/atomicstack/panoscope/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Bootstrap(collection string, count int, err error) {
	payload := map[string]interface{}{"collection": collection, "count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.bootstrap", payload)
}
