package vstate

import "github.com/aclueless/spair/dom"

// ElementHandle is the view-state record for one dynamic element: the live
// element, its attribute-diff store, and a cleanup scope that owns the
// listeners the store installs plus any child view-state the create pass
// attaches underneath it (§3). Every dynamic handle a create pass produces —
// element, text, list, match-arm — is a flat field on the enclosing
// component's view-state struct; ElementHandle is the element case of that
// record.
type ElementHandle struct {
	Elem  dom.Element
	Attrs *AttrStore
	Scope *CleanupScope

	pendingSelectValue *string
}

// NewElementHandle builds a handle for elem, sized for attrCapacity dynamic
// attributes, with a cleanup scope registered under parentScope (nil for a
// root handle).
func NewElementHandle(elem dom.Element, attrCapacity int, parentScope *CleanupScope) *ElementHandle {
	h := &ElementHandle{
		Elem:  elem,
		Attrs: NewAttrStore(attrCapacity),
		Scope: NewCleanupScope(parentScope),
	}
	h.Scope.OnCleanup(h.Attrs.RemoveAllListeners)
	return h
}

// SetSelectValueDeferred stages a `<select>`'s value property write; it is
// not applied to the DOM until FlushSelectValue runs, which the owning
// component's update pass calls after every other slot on this element has
// been written (§9 open question 2).
func (h *ElementHandle) SetSelectValueDeferred(value string) {
	h.pendingSelectValue = &value
}

// FlushSelectValue applies a staged select-value write, if any, and clears
// it. A no-op if SetSelectValueDeferred was not called since the last flush.
func (h *ElementHandle) FlushSelectValue() {
	if h.pendingSelectValue == nil {
		return
	}
	h.Elem.SetValueProp("value", *h.pendingSelectValue)
	h.pendingSelectValue = nil
}

// Dispose detaches elem from its parent and releases everything registered
// under this handle's scope (listeners, child handles).
func (h *ElementHandle) Dispose() {
	h.Elem.Remove()
	h.Scope.Dispose()
}
