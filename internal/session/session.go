// Package session holds the process-wide browsing state shared by the
// resolver, the window manager and the UI: the resolution cache, the
// stacking counter, the cascade offset and the last hovered name.
//
// A State is not safe for concurrent use. The UI mutates it only from the
// Bubble Tea update goroutine.
package session

import "github.com/atomicstack/panoscope/internal/object"

// Point is a cell position.
type Point struct {
	X int
	Y int
}

// State is the single browsing session.
type State struct {
	cache       map[string]object.Object
	order       []string
	z           int
	cascade     Point
	lastHovered string
}

// New returns a State whose cascade starts at origin.
func New(origin Point) *State {
	return &State{
		cache:   make(map[string]object.Object),
		cascade: origin,
	}
}

// Cached returns a previously resolved object.
func (s *State) Cached(name string) (object.Object, bool) {
	obj, ok := s.cache[name]
	return obj, ok
}

// Remember stores obj under name. A later write for the same name wins.
func (s *State) Remember(name string, obj object.Object) {
	if _, ok := s.cache[name]; !ok {
		s.order = append(s.order, name)
	}
	s.cache[name] = obj
}

// CacheLen reports how many names are cached.
func (s *State) CacheLen() int {
	return len(s.cache)
}

// CachedNames returns cached names in first-resolved order.
func (s *State) CachedNames() []string {
	return append([]string(nil), s.order...)
}

// NextZ returns a stacking value greater than every value handed out before.
func (s *State) NextZ() int {
	s.z++
	return s.z
}

// TopZ returns the most recent stacking value.
func (s *State) TopZ() int {
	return s.z
}

// Cascade returns the position for the next new window.
func (s *State) Cascade() Point {
	return s.cascade
}

// SetCascade records the position for the next new window.
func (s *State) SetCascade(p Point) {
	s.cascade = p
}

// LastHovered returns the name of the most recently hovered member.
func (s *State) LastHovered() string {
	return s.lastHovered
}

// SetLastHovered records the most recently hovered member.
func (s *State) SetLastHovered(name string) {
	s.lastHovered = name
}
