// Package dom is the thin adapter through which the rest of the runtime
// touches the host document (§4.A). It is the only package that knows
// whether it is talking to a real browser DOM (js/wasm build) or to an
// in-memory fake used by tests (host build); everything above this package
// programs against the interfaces declared here.
//
// Every operation on a Document/Element/Text/Comment is expected to log and
// swallow host errors rather than propagate them: the host document cannot
// be trusted to stay consistent under concurrent devtools edits, so a
// failed host call is logged via logutil and treated as a no-op.
package dom

// Kind identifies the concrete type behind a Node reference, supporting the
// "typed cast to text/element/comment" operation required by §4.A.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindComment
)

// Node is the node-reference type exposed by the adapter: first-child,
// next-sibling, and a typed cast to Element/Text/Comment.
type Node interface {
	Kind() Kind
	FirstChild() Node
	NextSibling() Node
	ParentNode() Node

	AsElement() (Element, bool)
	AsText() (Text, bool)
	AsComment() (Comment, bool)

	// Remove detaches this node from its parent, if any. A no-op if the
	// node has no parent or the host call fails (logged, swallowed).
	Remove()
}

// Listener is the handle returned by AddEventListener; Remove uninstalls
// the DOM handler it wraps. An event-listener slot (§3) owns exactly one
// Listener and calls Remove before installing a replacement.
type Listener interface {
	Remove()
}

// Event is the argument passed to an event listener.
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
	StopPropagation()
}

// Element is a live DOM element plus the operations the core needs on it:
// attribute get/set, DOM-property writes used by form controls (checked,
// value), child mutation, event listener install, and cloning for the
// template cache (§4.B).
type Element interface {
	Node

	TagName() string

	SetAttr(name, value string)
	RemoveAttr(name string)
	GetAttr(name string) (string, bool)

	// SetBoolProp and SetValueProp write a DOM property directly (not an
	// HTML attribute) — used for the `checked` and `value` form-control
	// properties per §4.A/§6.
	SetBoolProp(name string, value bool)
	SetValueProp(name string, value string)

	AppendChild(child Node)
	InsertBefore(child Node, before Node) // before == nil means append
	RemoveChild(child Node)

	// AddEventListener installs a listener under the given DOM event name
	// and returns a handle that removes it.
	AddEventListener(name string, fn func(Event)) Listener

	// CloneNode clones this element (and, if deep, its subtree), detached
	// from any document.
	CloneNode(deep bool) Element

	InnerHTML() string
	SetInnerHTML(html string)
}

// Text is a live DOM text node.
type Text interface {
	Node
	Data() string
	SetData(value string)
}

// Comment is a live DOM comment node, used as a reconciler marker (§3/§4.F).
type Comment interface {
	Node
	Data() string
	SetData(value string)
}

// Document creates nodes and performs global lookups. NewDocument (declared
// per build tag) returns the appropriate backend.
type Document interface {
	CreateElement(tag string) Element
	CreateText(data string) Text
	CreateComment(data string) Comment

	// ParseFragment parses an HTML string once and returns a detached root
	// element wrapping all of it (used by template.Template, §4.B).
	ParseFragment(html string) Element

	GetElementByID(id string) (Element, bool)
}
