package vstate

import "github.com/aclueless/spair/dom"

// TextHandle is the view-state record for one dynamic text node: the live
// text node plus the last value written to it, so an update pass can skip
// the DOM write when the value hasn't changed. The original's equivalent
// (original_source/src/dom/attributes.rs's Attribute enum) is a tagged union
// over the value kinds a text binding can hold (string, each signed-integer
// width, float, bool, char); TextHandle expresses the same "one held kind
// per instance, compared by value" shape with a Go generic parameter
// instead of a closed sum type — there is no "default string" sentinel
// variant to reproduce because a zero-value T already serves that role.
type TextHandle[T comparable] struct {
	Node dom.Text

	last    T
	hasLast bool
}

// NewTextHandle creates a handle bound to node with no prior value recorded,
// so the first Update always performs the DOM write.
func NewTextHandle[T comparable](node dom.Text) *TextHandle[T] {
	return &TextHandle[T]{Node: node}
}

// Update writes format(value) to the text node if value differs from the
// last value passed to Update (or this is the first call), and reports
// whether it wrote.
func (h *TextHandle[T]) Update(value T, format func(T) string) bool {
	if h.hasLast && h.last == value {
		return false
	}
	h.last = value
	h.hasLast = true
	h.Node.SetData(format(value))
	return true
}

// Dispose detaches the text node from its parent.
func (h *TextHandle[T]) Dispose() {
	h.Node.Remove()
}
