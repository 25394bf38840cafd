// Package reconcile implements the list/sum-type diffing algorithms that sit
// on top of vstate's per-element and per-text handles: a keyed list
// reconciler that minimizes DOM moves (§4.F), a positional non-keyed list,
// and a match-arm switcher for sum-type view state (§4.G).
package reconcile

import "github.com/aclueless/spair/dom"

// View is one reconciled item: a component- or template-backed view-state
// instance that can be (re)positioned in the live DOM and torn down.
type View interface {
	// Node returns the item's own first DOM node, used as the anchor when
	// a sibling item needs to be inserted or moved immediately before it.
	Node() dom.Node

	// InsertBefore places the item into parent immediately before before
	// (nil meaning "at the end" of parent's current children). Called both
	// for first insertion and for repositioning an existing item.
	InsertBefore(parent dom.Element, before dom.Node)

	// Remove detaches the item from its parent and releases its resources
	// (event listeners, child view-state).
	Remove()
}
