package reconcile

import "github.com/aclueless/spair/dom"

// List is the non-keyed list reconciler (§4.G): it diffs by position only,
// reusing index i's existing view for data index i regardless of identity,
// appending new views when the data grows and removing trailing views when
// it shrinks. No reordering ever happens — a non-keyed list is for data
// whose items have no stable identity across renders (e.g. wholesale
// replacement of a view for every render), not for data that can be
// reordered or partially removed from the middle without a visible "wrong
// item updated" flash.
type List[D any, V View] struct {
	parent    dom.Element
	endMarker dom.Node

	createFn func(D) V
	updateFn func(V, D)

	items []V
}

// NewList creates an empty non-keyed list reconciler.
func NewList[D any, V View](
	parent dom.Element,
	endMarker dom.Node,
	createFn func(D) V,
	updateFn func(V, D),
) *List[D, V] {
	return &List[D, V]{parent: parent, endMarker: endMarker, createFn: createFn, updateFn: updateFn}
}

func (l *List[D, V]) Len() int    { return len(l.items) }
func (l *List[D, V]) Views() []V  { return l.items }

// Update reuses items[i] for data[i] while both exist, creates new items at
// the end if data grew, and removes trailing items if data shrank.
func (l *List[D, V]) Update(data []D) {
	n := len(data)
	for i := 0; i < len(l.items) && i < n; i++ {
		l.updateFn(l.items[i], data[i])
	}

	switch {
	case n > len(l.items):
		for i := len(l.items); i < n; i++ {
			v := l.createFn(data[i])
			v.InsertBefore(l.parent, l.endMarker)
			l.items = append(l.items, v)
		}
	case n < len(l.items):
		for i := len(l.items) - 1; i >= n; i-- {
			l.items[i].Remove()
		}
		l.items = l.items[:n]
	}
}

// Clear removes every item.
func (l *List[D, V]) Clear() {
	for _, v := range l.items {
		v.Remove()
	}
	l.items = nil
}
