package events

import "github.com/atomicstack/panoscope/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Match(window int, query string, forward bool, index int) {
	logging.Trace("search.match", map[string]interface{}{"window": window, "query": query, "forward": forward, "index": index})
}

func (SearchTracer) NoMatch(window int, query string, forward bool) {
	logging.Trace("search.no-match", map[string]interface{}{"window": window, "query": query, "forward": forward})
}

func (SearchTracer) Edit(window int, query string) {
	logging.Trace("search.edit", map[string]interface{}{"window": window, "query": query})
}
