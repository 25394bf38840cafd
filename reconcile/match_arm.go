package reconcile

import "github.com/aclueless/spair/dom"

// MatchArm reconciles a sum-type view: exactly one variant is mounted at a
// time, keyed by a tag value (§4.G). Switching to a different tag disposes
// the old variant's view-state and creates the new one from scratch;
// switching to the same tag leaves the mounted view alone so the caller can
// run that variant's own update function against it. There is no
// cross-variant diffing — Go's lack of sum types means each variant is its
// own concrete view type behind the View interface, so "update in place"
// only makes sense when the tag (and therefore the concrete type) hasn't
// changed.
type MatchArm[T comparable] struct {
	parent    dom.Element
	endMarker dom.Node

	hasCurrent bool
	currentTag T
	current    View
}

// NewMatchArm creates an empty match-arm reconciler that mounts its current
// variant into parent, immediately before endMarker (nil meaning append).
func NewMatchArm[T comparable](parent dom.Element, endMarker dom.Node) *MatchArm[T] {
	return &MatchArm[T]{parent: parent, endMarker: endMarker}
}

// Current returns the mounted view and true, or nil, false if nothing is
// mounted yet.
func (m *MatchArm[T]) Current() (View, bool) {
	return m.current, m.hasCurrent
}

// Switch ensures the variant identified by tag is mounted. If a different
// tag was mounted (or nothing was), the old view is removed and createFn is
// called to build the new one, which is inserted and returned with created
// = true. If tag matches what's already mounted, the existing view is
// returned unchanged with created = false, and the caller is expected to
// run that variant's own update against it.
func (m *MatchArm[T]) Switch(tag T, createFn func() View) (view View, created bool) {
	if m.hasCurrent && m.currentTag == tag {
		return m.current, false
	}
	if m.hasCurrent {
		m.current.Remove()
	}
	v := createFn()
	v.InsertBefore(m.parent, m.endMarker)
	m.current = v
	m.currentTag = tag
	m.hasCurrent = true
	return v, true
}

// Clear removes the currently mounted variant, if any.
func (m *MatchArm[T]) Clear() {
	if m.hasCurrent {
		m.current.Remove()
		m.current = nil
		m.hasCurrent = false
	}
}
