// Package fakedom is a minimal in-memory DOM tree used to back the `dom`
// package's host build (anything other than js&&wasm), so the core
// create/update/reconcile packages can be exercised with `go test` without a
// browser. It has no relation to any host API; it is a plain tree of Go
// structs, modelled on the shape of
// _examples/ozanturksever-uiwgo/mockdom/mock.go's MockJSValue (a single node
// type carrying properties, used uniformly for elements/text/comments).
package fakedom

// Kind mirrors dom.Kind without importing the dom package (fakedom sits
// below dom in the dependency graph; dom/fake_adapter.go does the wrapping).
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindComment
)

// Node is a single node in the fake tree: element, text, or comment
// depending on Kind. Using one struct for all three, rather than three
// types, follows MockJSValue's approach of a single generic value node.
type Node struct {
	Kind Kind

	Tag  string // element only
	Data string // text/comment only

	Attrs     map[string]string
	BoolProps map[string]bool
	StrProps  map[string]string

	Parent   *Node
	Children []*Node

	listeners map[string][]*Listener
}

func newNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewElement builds a detached element node.
func NewElement(tag string) *Node {
	n := newNode(KindElement)
	n.Tag = tag
	n.Attrs = make(map[string]string)
	n.BoolProps = make(map[string]bool)
	n.StrProps = make(map[string]string)
	n.listeners = make(map[string][]*Listener)
	return n
}

// NewText builds a detached text node.
func NewText(data string) *Node {
	n := newNode(KindText)
	n.Data = data
	return n
}

// NewComment builds a detached comment node.
func NewComment(data string) *Node {
	n := newNode(KindComment)
	n.Data = data
	return n
}

func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

func (n *Node) NextSibling() *Node {
	if n.Parent == nil {
		return nil
	}
	for i, c := range n.Parent.Children {
		if c == n {
			if i+1 < len(n.Parent.Children) {
				return n.Parent.Children[i+1]
			}
			return nil
		}
	}
	return nil
}

func (n *Node) ParentNode() *Node {
	return n.Parent
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	child.detach()
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertBefore inserts child immediately before the node `before`, or
// appends it when before is nil.
func (n *Node) InsertBefore(child *Node, before *Node) {
	if before == nil {
		n.AppendChild(child)
		return
	}
	child.detach()
	idx := -1
	for i, c := range n.Children {
		if c == before {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = child
}

// RemoveChild removes child from n's children.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	n.detach()
}

func (n *Node) detach() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

func (n *Node) RemoveAttr(name string) {
	delete(n.Attrs, name)
}

func (n *Node) GetAttr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) SetBoolProp(name string, value bool) {
	if n.BoolProps == nil {
		n.BoolProps = make(map[string]bool)
	}
	n.BoolProps[name] = value
}

func (n *Node) BoolProp(name string) bool {
	return n.BoolProps[name]
}

func (n *Node) SetValueProp(name, value string) {
	if n.StrProps == nil {
		n.StrProps = make(map[string]string)
	}
	n.StrProps[name] = value
}

func (n *Node) ValueProp(name string) string {
	return n.StrProps[name]
}

// CloneNode clones n (and its subtree, if deep) as a detached tree.
// Event listeners are never cloned, mirroring native cloneNode semantics.
func (n *Node) CloneNode(deep bool) *Node {
	clone := newNode(n.Kind)
	clone.Tag = n.Tag
	clone.Data = n.Data
	if n.Attrs != nil {
		clone.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			clone.Attrs[k] = v
		}
	}
	if n.BoolProps != nil {
		clone.BoolProps = make(map[string]bool, len(n.BoolProps))
		for k, v := range n.BoolProps {
			clone.BoolProps[k] = v
		}
	}
	if n.StrProps != nil {
		clone.StrProps = make(map[string]string, len(n.StrProps))
		for k, v := range n.StrProps {
			clone.StrProps[k] = v
		}
	}
	if n.Kind == KindElement {
		clone.listeners = make(map[string][]*Listener)
	}
	if deep {
		for _, c := range n.Children {
			clone.AppendChild(c.CloneNode(true))
		}
	}
	return clone
}

// AddEventListener registers fn under the given event name and returns a
// handle that unregisters it.
func (n *Node) AddEventListener(name string, fn func(*Event)) *Listener {
	if n.listeners == nil {
		n.listeners = make(map[string][]*Listener)
	}
	l := &Listener{node: n, name: name, fn: fn}
	n.listeners[name] = append(n.listeners[name], l)
	return l
}

// Dispatch synchronously invokes every listener registered for eventType on
// n, in registration order, unless a handler calls StopPropagation — this is
// test-only plumbing, there is no bubbling phase.
func (n *Node) Dispatch(eventType string) *Event {
	ev := &Event{TypeName: eventType, Target: n}
	for _, l := range n.listeners[eventType] {
		if l.removed {
			continue
		}
		l.fn(ev)
		if ev.propagationStopped {
			break
		}
	}
	return ev
}

// Listener is the handle returned by AddEventListener.
type Listener struct {
	node    *Node
	name    string
	fn      func(*Event)
	removed bool
}

// Remove uninstalls the listener; idempotent.
func (l *Listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	list := l.node.listeners[l.name]
	for i, other := range list {
		if other == l {
			l.node.listeners[l.name] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// Event is the value passed to a fake listener.
type Event struct {
	TypeName           string
	Target             *Node
	defaultPrevented   bool
	propagationStopped bool
}

func (e *Event) PreventDefault()  { e.defaultPrevented = true }
func (e *Event) StopPropagation() { e.propagationStopped = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
