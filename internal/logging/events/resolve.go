package events

import "github.com/atomicstack/panoscope/internal/logging"

type ResolveTracer struct{}

var Resolve = ResolveTracer{}

func (ResolveTracer) CacheHit(name string) {
	logging.Trace("resolve.cache-hit", map[string]interface{}{"name": name})
}

func (ResolveTracer) Lookup(kind, name string) {
	logging.Trace("resolve.lookup", map[string]interface{}{"kind": kind, "name": name})
}

func (ResolveTracer) Found(kind, name string) {
	logging.Trace("resolve.found", map[string]interface{}{"kind": kind, "name": name})
}

func (ResolveTracer) NotFound(name string) {
	logging.Trace("resolve.not-found", map[string]interface{}{"name": name})
}

func (ResolveTracer) Failure(kind, name string, err error) {
	payload := map[string]interface{}{"kind": kind, "name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("resolve.failure", payload)
}
