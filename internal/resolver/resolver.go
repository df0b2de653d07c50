// Package resolver turns a bare object name into an Address or AddressGroup,
// trying the Address collection first and memoising hits in the session
// cache.
package resolver

import (
	"context"

	"github.com/atomicstack/panoscope/internal/logging"
	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/object"
	"github.com/atomicstack/panoscope/internal/session"
)

// Source fetches objects from the upstream collections. Find returns an
// empty slice when nothing matches.
type Source interface {
	Find(ctx context.Context, kind object.Kind, name string) ([]object.Object, error)
	List(ctx context.Context, kind object.Kind) ([]object.Object, error)
}

// Status classifies a resolution outcome.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not-found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of resolving one name.
type Result struct {
	Name   string
	Status Status
	Kind   object.Kind
	Object object.Object
	Err    error
	Cached bool
}

// Display returns the object to render for the result: the resolved object,
// the not-found sentinel, or an error placeholder.
func (r Result) Display() object.Object {
	if r.Status == StatusFailed {
		return object.Failure(r.Err)
	}
	return r.Object
}

// Resolver resolves names against a Source, caching hits in a session.
type Resolver struct {
	source  Source
	session *session.State
}

// New returns a Resolver backed by source and sess.
func New(source Source, sess *session.State) *Resolver {
	return &Resolver{source: source, session: sess}
}

// Cached returns the cached result for name, if any.
func (r *Resolver) Cached(name string) (Result, bool) {
	obj, ok := r.session.Cached(name)
	if !ok {
		return Result{}, false
	}
	events.Resolve.CacheHit(name)
	kind := object.KindAddress
	if obj.IsGroup() {
		kind = object.KindAddressGroup
	}
	return Result{Name: name, Status: StatusFound, Kind: kind, Object: obj, Cached: true}, true
}

// Fetch performs the address-then-group lookup without touching the cache,
// so it may run off the UI goroutine.
func (r *Resolver) Fetch(ctx context.Context, name string) Result {
	for _, kind := range []object.Kind{object.KindAddress, object.KindAddressGroup} {
		events.Resolve.Lookup(kind.String(), name)
		objs, err := r.source.Find(ctx, kind, name)
		if err != nil {
			events.Resolve.Failure(kind.String(), name, err)
			logging.Errorf("resolve %s %q", err, kind, name)
			return Result{Name: name, Status: StatusFailed, Kind: kind, Err: err}
		}
		if len(objs) > 0 {
			events.Resolve.Found(kind.String(), name)
			return Result{Name: name, Status: StatusFound, Kind: kind, Object: objs[0]}
		}
	}
	events.Resolve.NotFound(name)
	return Result{Name: name, Status: StatusNotFound, Object: object.NotFound(name)}
}

// Remember caches a found result. Not-found and failed results are not
// cached, so a later attempt queries the console again.
func (r *Resolver) Remember(res Result) {
	if res.Status != StatusFound || res.Cached {
		return
	}
	r.session.Remember(res.Name, res.Object)
}

// Resolve returns the cached object for name or fetches and caches it.
func (r *Resolver) Resolve(ctx context.Context, name string) Result {
	if res, ok := r.Cached(name); ok {
		return res
	}
	res := r.Fetch(ctx, name)
	r.Remember(res)
	return res
}

// List fetches a whole collection; used for the two startup windows.
func (r *Resolver) List(ctx context.Context, kind object.Kind) ([]object.Object, error) {
	return r.source.List(ctx, kind)
}
